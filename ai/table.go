/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

// definitions lists every Application Identifier in the GS1 General
// Specifications (release 18) that the Digital Link toolkit understands. The
// Segments of each entry describe how its value is split for binary
// compression; unless an entry names its own pattern, its validation pattern
// is built from those segments.
var definitions = []Definition{
	{AI: "00", Title: "Serial Shipping Container Code (SSCC)", Label: "SSCC", ShortCode: "sscc", Kind: Identifier, Format: "N18", FixedLength: true, CheckDigit: LastDigit, Segments: []Segment{n(18)}},
	{AI: "01", Title: "Global Trade Item Number (GTIN)", Label: "GTIN", ShortCode: "gtin", Kind: Identifier, Format: "N14", FixedLength: true, CheckDigit: LastDigit, Qualifiers: []string{"22", "10", "21"}, Segments: []Segment{n(14)}, pattern: `(\d{12,14}|\d{8})`},
	{AI: "02", Title: "GTIN of contained trade items", Label: "CONTENT", Kind: DataAttribute, Format: "N14", FixedLength: true, CheckDigit: LastDigit, Segments: []Segment{n(14)}},
	{AI: "10", Title: "Batch or lot number", Label: "BATCH/LOT", ShortCode: "lot", Kind: Qualifier, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "11", Title: "Production date (YYMMDD)", Label: "PROD DATE", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "12", Title: "Due date (YYMMDD)", Label: "DUE DATE", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "13", Title: "Packaging date (YYMMDD)", Label: "PACK DATE", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "15", Title: "Best before date (YYMMDD)", Label: "BEST BEFORE or BEST BY", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "16", Title: "Sell by date (YYMMDD)", Label: "SELL BY", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "17", Title: "Expiration date (YYMMDD)", Label: "USE BY OR EXPIRY", ShortCode: "exp", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "20", Title: "Internal product variant", Label: "VARIANT", Kind: DataAttribute, Format: "N2", FixedLength: true, Segments: []Segment{n(2)}},
	{AI: "21", Title: "Serial number", Label: "SERIAL", ShortCode: "ser", Kind: Qualifier, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "22", Title: "Consumer product variant", Label: "CPV", ShortCode: "cpv", Kind: Qualifier, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "240", Title: "Additional product identification assigned by the manufacturer", Label: "ADDITIONAL ID", Kind: DataAttribute, Format: "X..30", FixedLength: false, Segments: []Segment{xv(30)}},
	{AI: "241", Title: "Customer part number", Label: "CUST. PART NO.", Kind: DataAttribute, Format: "X..30", FixedLength: false, Segments: []Segment{xv(30)}},
	{AI: "242", Title: "Made-to-Order variation number", Label: "MTO VARIANT", Kind: DataAttribute, Format: "N..6", FixedLength: false, Segments: []Segment{nv(6)}},
	{AI: "243", Title: "Packaging component number", Label: "PCN", Kind: DataAttribute, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "250", Title: "Secondary serial number", Label: "SECONDARY SERIAL", Kind: DataAttribute, Format: "X..30", FixedLength: false, Segments: []Segment{xv(30)}},
	{AI: "251", Title: "Reference to source entity", Label: "REF. TO SOURCE", Kind: DataAttribute, Format: "X..30", FixedLength: false, Segments: []Segment{xv(30)}},
	{AI: "253", Title: "Global Document Type Identifier (GDTI)", Label: "GDTI", ShortCode: "gdti", Kind: Identifier, Format: "N13+X..17", FixedLength: false, CheckDigit: 13, Segments: []Segment{n(13), xv(17)}},
	{AI: "254", Title: "GLN extension component", Label: "GLN EXTENSION COMPONENT", ShortCode: "glnx", Kind: Qualifier, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "255", Title: "Global Coupon Number (GCN)", Label: "GCN", ShortCode: "gcn", Kind: Identifier, Format: "N13+N..12", FixedLength: false, CheckDigit: 13, Segments: []Segment{n(13), nv(12)}},
	{AI: "30", Title: "Variable count of items (variable measure trade item)", Label: "VAR. COUNT", Kind: DataAttribute, Format: "N..8", FixedLength: false, Segments: []Segment{nv(8)}},
	{AI: "3100", Title: "Net weight, kilograms (variable measure trade item)", Label: "NET WEIGHT (kg)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3101", Title: "Net weight, kilograms (variable measure trade item)", Label: "NET WEIGHT (kg)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3102", Title: "Net weight, kilograms (variable measure trade item)", Label: "NET WEIGHT (kg)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3103", Title: "Net weight, kilograms (variable measure trade item)", Label: "NET WEIGHT (kg)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3104", Title: "Net weight, kilograms (variable measure trade item)", Label: "NET WEIGHT (kg)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3105", Title: "Net weight, kilograms (variable measure trade item)", Label: "NET WEIGHT (kg)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3110", Title: "Length or first dimension, metres (variable measure trade item)", Label: "LENGTH (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3111", Title: "Length or first dimension, metres (variable measure trade item)", Label: "LENGTH (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3112", Title: "Length or first dimension, metres (variable measure trade item)", Label: "LENGTH (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3113", Title: "Length or first dimension, metres (variable measure trade item)", Label: "LENGTH (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3114", Title: "Length or first dimension, metres (variable measure trade item)", Label: "LENGTH (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3115", Title: "Length or first dimension, metres (variable measure trade item)", Label: "LENGTH (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3120", Title: "Width, diameter, or second dimension, metres (variable measure trade item)", Label: "WIDTH (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3121", Title: "Width, diameter, or second dimension, metres (variable measure trade item)", Label: "WIDTH (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3122", Title: "Width, diameter, or second dimension, metres (variable measure trade item)", Label: "WIDTH (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3123", Title: "Width, diameter, or second dimension, metres (variable measure trade item)", Label: "WIDTH (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3124", Title: "Width, diameter, or second dimension, metres (variable measure trade item)", Label: "WIDTH (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3125", Title: "Width, diameter, or second dimension, metres (variable measure trade item)", Label: "WIDTH (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3130", Title: "Depth, thickness, height, or third dimension, metres (variable measure trade item)", Label: "HEIGHT (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3131", Title: "Depth, thickness, height, or third dimension, metres (variable measure trade item)", Label: "HEIGHT (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3132", Title: "Depth, thickness, height, or third dimension, metres (variable measure trade item)", Label: "HEIGHT (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3133", Title: "Depth, thickness, height, or third dimension, metres (variable measure trade item)", Label: "HEIGHT (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3134", Title: "Depth, thickness, height, or third dimension, metres (variable measure trade item)", Label: "HEIGHT (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3135", Title: "Depth, thickness, height, or third dimension, metres (variable measure trade item)", Label: "HEIGHT (m)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3140", Title: "Area, square metres (variable measure trade item)", Label: "AREA (m^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3141", Title: "Area, square metres (variable measure trade item)", Label: "AREA (m^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3142", Title: "Area, square metres (variable measure trade item)", Label: "AREA (m^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3143", Title: "Area, square metres (variable measure trade item)", Label: "AREA (m^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3144", Title: "Area, square metres (variable measure trade item)", Label: "AREA (m^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3145", Title: "Area, square metres (variable measure trade item)", Label: "AREA (m^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3150", Title: "Net volume, litres (variable measure trade item)", Label: "NET VOLUME (l)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3151", Title: "Net volume, litres (variable measure trade item)", Label: "NET VOLUME (l)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3152", Title: "Net volume, litres (variable measure trade item)", Label: "NET VOLUME (l)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3153", Title: "Net volume, litres (variable measure trade item)", Label: "NET VOLUME (l)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3154", Title: "Net volume, litres (variable measure trade item)", Label: "NET VOLUME (l)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3155", Title: "Net volume, litres (variable measure trade item)", Label: "NET VOLUME (l)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3160", Title: "Net volume, cubic metres (variable measure trade item)", Label: "NET VOLUME (m^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3161", Title: "Net volume, cubic metres (variable measure trade item)", Label: "NET VOLUME (m^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3162", Title: "Net volume, cubic metres (variable measure trade item)", Label: "NET VOLUME (m^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3163", Title: "Net volume, cubic metres (variable measure trade item)", Label: "NET VOLUME (m^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3164", Title: "Net volume, cubic metres (variable measure trade item)", Label: "NET VOLUME (m^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3165", Title: "Net volume, cubic metres (variable measure trade item)", Label: "NET VOLUME (m^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3200", Title: "Net weight, pounds (variable measure trade item)", Label: "NET WEIGHT (lb)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3201", Title: "Net weight, pounds (variable measure trade item)", Label: "NET WEIGHT (lb)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3202", Title: "Net weight, pounds (variable measure trade item)", Label: "NET WEIGHT (lb)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3203", Title: "Net weight, pounds (variable measure trade item)", Label: "NET WEIGHT (lb)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3204", Title: "Net weight, pounds (variable measure trade item)", Label: "NET WEIGHT (lb)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3205", Title: "Net weight, pounds (variable measure trade item)", Label: "NET WEIGHT (lb)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3210", Title: "Length or first dimension, inches (variable measure trade item)", Label: "LENGTH (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3211", Title: "Length or first dimension, inches (variable measure trade item)", Label: "LENGTH (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3212", Title: "Length or first dimension, inches (variable measure trade item)", Label: "LENGTH (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3213", Title: "Length or first dimension, inches (variable measure trade item)", Label: "LENGTH (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3214", Title: "Length or first dimension, inches (variable measure trade item)", Label: "LENGTH (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3215", Title: "Length or first dimension, inches (variable measure trade item)", Label: "LENGTH (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3220", Title: "Length or first dimension, feet (variable measure trade item)", Label: "LENGTH (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3221", Title: "Length or first dimension, feet (variable measure trade item)", Label: "LENGTH (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3222", Title: "Length or first dimension, feet (variable measure trade item)", Label: "LENGTH (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3223", Title: "Length or first dimension, feet (variable measure trade item)", Label: "LENGTH (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3224", Title: "Length or first dimension, feet (variable measure trade item)", Label: "LENGTH (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3225", Title: "Length or first dimension, feet (variable measure trade item)", Label: "LENGTH (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3230", Title: "Length or first dimension, yards (variable measure trade item)", Label: "LENGTH (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3231", Title: "Length or first dimension, yards (variable measure trade item)", Label: "LENGTH (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3232", Title: "Length or first dimension, yards (variable measure trade item)", Label: "LENGTH (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3233", Title: "Length or first dimension, yards (variable measure trade item)", Label: "LENGTH (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3234", Title: "Length or first dimension, yards (variable measure trade item)", Label: "LENGTH (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3235", Title: "Length or first dimension, yards (variable measure trade item)", Label: "LENGTH (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3240", Title: "Width, diameter, or second dimension, inches (variable measure trade item)", Label: "WIDTH (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3241", Title: "Width, diameter, or second dimension, inches (variable measure trade item)", Label: "WIDTH (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3242", Title: "Width, diameter, or second dimension, inches (variable measure trade item)", Label: "WIDTH (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3243", Title: "Width, diameter, or second dimension, inches (variable measure trade item)", Label: "WIDTH (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3244", Title: "Width, diameter, or second dimension, inches (variable measure trade item)", Label: "WIDTH (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3245", Title: "Width, diameter, or second dimension, inches (variable measure trade item)", Label: "WIDTH (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3250", Title: "Width, diameter, or second dimension, feet (variable measure trade item)", Label: "WIDTH (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3251", Title: "Width, diameter, or second dimension, feet (variable measure trade item)", Label: "WIDTH (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3252", Title: "Width, diameter, or second dimension, feet (variable measure trade item)", Label: "WIDTH (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3253", Title: "Width, diameter, or second dimension, feet (variable measure trade item)", Label: "WIDTH (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3254", Title: "Width, diameter, or second dimension, feet (variable measure trade item)", Label: "WIDTH (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3255", Title: "Width, diameter, or second dimension, feet (variable measure trade item)", Label: "WIDTH (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3260", Title: "Width, diameter, or second dimension, yards (variable measure trade item)", Label: "WIDTH (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3261", Title: "Width, diameter, or second dimension, yards (variable measure trade item)", Label: "WIDTH (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3262", Title: "Width, diameter, or second dimension, yards (variable measure trade item)", Label: "WIDTH (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3263", Title: "Width, diameter, or second dimension, yards (variable measure trade item)", Label: "WIDTH (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3264", Title: "Width, diameter, or second dimension, yards (variable measure trade item)", Label: "WIDTH (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3265", Title: "Width, diameter, or second dimension, yards (variable measure trade item)", Label: "WIDTH (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3270", Title: "Depth, thickness, height, or third dimension, inches (variable measure trade item)", Label: "HEIGHT (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3271", Title: "Depth, thickness, height, or third dimension, inches (variable measure trade item)", Label: "HEIGHT (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3272", Title: "Depth, thickness, height, or third dimension, inches (variable measure trade item)", Label: "HEIGHT (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3273", Title: "Depth, thickness, height, or third dimension, inches (variable measure trade item)", Label: "HEIGHT (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3274", Title: "Depth, thickness, height, or third dimension, inches (variable measure trade item)", Label: "HEIGHT (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3275", Title: "Depth, thickness, height, or third dimension, inches (variable measure trade item)", Label: "HEIGHT (in)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3280", Title: "Depth, thickness, height, or third dimension, feet (variable measure trade item)", Label: "HEIGHT (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3281", Title: "Depth, thickness, height, or third dimension, feet (variable measure trade item)", Label: "HEIGHT (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3282", Title: "Depth, thickness, height, or third dimension, feet (variable measure trade item)", Label: "HEIGHT (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3283", Title: "Depth, thickness, height, or third dimension, feet (variable measure trade item)", Label: "HEIGHT (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3284", Title: "Depth, thickness, height, or third dimension, feet (variable measure trade item)", Label: "HEIGHT (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3285", Title: "Depth, thickness, height, or third dimension, feet (variable measure trade item)", Label: "HEIGHT (ft)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3290", Title: "Depth, thickness, height, or third dimension, yards (variable measure trade item)", Label: "HEIGHT (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3291", Title: "Depth, thickness, height, or third dimension, yards (variable measure trade item)", Label: "HEIGHT (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3292", Title: "Depth, thickness, height, or third dimension, yards (variable measure trade item)", Label: "HEIGHT (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3293", Title: "Depth, thickness, height, or third dimension, yards (variable measure trade item)", Label: "HEIGHT (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3294", Title: "Depth, thickness, height, or third dimension, yards (variable measure trade item)", Label: "HEIGHT (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3295", Title: "Depth, thickness, height, or third dimension, yards (variable measure trade item)", Label: "HEIGHT (yd)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3300", Title: "Logistic weight, kilograms", Label: "GROSS WEIGHT (kg)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3301", Title: "Logistic weight, kilograms", Label: "GROSS WEIGHT (kg)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3302", Title: "Logistic weight, kilograms", Label: "GROSS WEIGHT (kg)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3303", Title: "Logistic weight, kilograms", Label: "GROSS WEIGHT (kg)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3304", Title: "Logistic weight, kilograms", Label: "GROSS WEIGHT (kg)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3305", Title: "Logistic weight, kilograms", Label: "GROSS WEIGHT (kg)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3310", Title: "Length or first dimension, metres", Label: "LENGTH (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3311", Title: "Length or first dimension, metres", Label: "LENGTH (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3312", Title: "Length or first dimension, metres", Label: "LENGTH (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3313", Title: "Length or first dimension, metres", Label: "LENGTH (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3314", Title: "Length or first dimension, metres", Label: "LENGTH (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3315", Title: "Length or first dimension, metres", Label: "LENGTH (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3320", Title: "Width, diameter, or second dimension, metres", Label: "WIDTH (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3321", Title: "Width, diameter, or second dimension, metres", Label: "WIDTH (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3322", Title: "Width, diameter, or second dimension, metres", Label: "WIDTH (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3323", Title: "Width, diameter, or second dimension, metres", Label: "WIDTH (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3324", Title: "Width, diameter, or second dimension, metres", Label: "WIDTH (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3325", Title: "Width, diameter, or second dimension, metres", Label: "WIDTH (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3330", Title: "Depth, thickness, height, or third dimension, metres", Label: "HEIGHT (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3331", Title: "Depth, thickness, height, or third dimension, metres", Label: "HEIGHT (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3332", Title: "Depth, thickness, height, or third dimension, metres", Label: "HEIGHT (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3333", Title: "Depth, thickness, height, or third dimension, metres", Label: "HEIGHT (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3334", Title: "Depth, thickness, height, or third dimension, metres", Label: "HEIGHT (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3335", Title: "Depth, thickness, height, or third dimension, metres", Label: "HEIGHT (m), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3340", Title: "Area, square metres", Label: "AREA (m^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3341", Title: "Area, square metres", Label: "AREA (m^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3342", Title: "Area, square metres", Label: "AREA (m^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3343", Title: "Area, square metres", Label: "AREA (m^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3344", Title: "Area, square metres", Label: "AREA (m^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3345", Title: "Area, square metres", Label: "AREA (m^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3350", Title: "Logistic volume, litres", Label: "VOLUME (l), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3351", Title: "Logistic volume, litres", Label: "VOLUME (l), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3352", Title: "Logistic volume, litres", Label: "VOLUME (l), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3353", Title: "Logistic volume, litres", Label: "VOLUME (l), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3354", Title: "Logistic volume, litres", Label: "VOLUME (l), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3355", Title: "Logistic volume, litres", Label: "VOLUME (l), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3360", Title: "Logistic volume, cubic metres", Label: "VOLUME (m^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3361", Title: "Logistic volume, cubic metres", Label: "VOLUME (m^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3362", Title: "Logistic volume, cubic metres", Label: "VOLUME (m^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3363", Title: "Logistic volume, cubic metres", Label: "VOLUME (m^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3364", Title: "Logistic volume, cubic metres", Label: "VOLUME (m^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3365", Title: "Logistic volume, cubic metres", Label: "VOLUME (m^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3370", Title: "Kilograms per square metre", Label: "KG PER m^2", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3371", Title: "Kilograms per square metre", Label: "KG PER m^2", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3372", Title: "Kilograms per square metre", Label: "KG PER m^2", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3373", Title: "Kilograms per square metre", Label: "KG PER m^2", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3374", Title: "Kilograms per square metre", Label: "KG PER m^2", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3375", Title: "Kilograms per square metre", Label: "KG PER m^2", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3400", Title: "Logistic weight, pounds", Label: "GROSS WEIGHT (lb)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3401", Title: "Logistic weight, pounds", Label: "GROSS WEIGHT (lb)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3402", Title: "Logistic weight, pounds", Label: "GROSS WEIGHT (lb)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3403", Title: "Logistic weight, pounds", Label: "GROSS WEIGHT (lb)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3404", Title: "Logistic weight, pounds", Label: "GROSS WEIGHT (lb)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3405", Title: "Logistic weight, pounds", Label: "GROSS WEIGHT (lb)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3410", Title: "Length or first dimension, inches", Label: "LENGTH (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3411", Title: "Length or first dimension, inches", Label: "LENGTH (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3412", Title: "Length or first dimension, inches", Label: "LENGTH (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3413", Title: "Length or first dimension, inches", Label: "LENGTH (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3414", Title: "Length or first dimension, inches", Label: "LENGTH (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3415", Title: "Length or first dimension, inches", Label: "LENGTH (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3420", Title: "Length or first dimension, feet", Label: "LENGTH (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3421", Title: "Length or first dimension, feet", Label: "LENGTH (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3422", Title: "Length or first dimension, feet", Label: "LENGTH (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3423", Title: "Length or first dimension, feet", Label: "LENGTH (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3424", Title: "Length or first dimension, feet", Label: "LENGTH (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3425", Title: "Length or first dimension, feet", Label: "LENGTH (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3430", Title: "Length or first dimension, yards", Label: "LENGTH (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3431", Title: "Length or first dimension, yards", Label: "LENGTH (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3432", Title: "Length or first dimension, yards", Label: "LENGTH (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3433", Title: "Length or first dimension, yards", Label: "LENGTH (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3434", Title: "Length or first dimension, yards", Label: "LENGTH (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3435", Title: "Length or first dimension, yards", Label: "LENGTH (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3440", Title: "Width, diameter, or second dimension, inches", Label: "WIDTH (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3441", Title: "Width, diameter, or second dimension, inches", Label: "WIDTH (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3442", Title: "Width, diameter, or second dimension, inches", Label: "WIDTH (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3443", Title: "Width, diameter, or second dimension, inches", Label: "WIDTH (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3444", Title: "Width, diameter, or second dimension, inches", Label: "WIDTH (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3445", Title: "Width, diameter, or second dimension, inches", Label: "WIDTH (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3450", Title: "Width, diameter, or second dimension, feet", Label: "WIDTH (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3451", Title: "Width, diameter, or second dimension, feet", Label: "WIDTH (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3452", Title: "Width, diameter, or second dimension, feet", Label: "WIDTH (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3453", Title: "Width, diameter, or second dimension, feet", Label: "WIDTH (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3454", Title: "Width, diameter, or second dimension, feet", Label: "WIDTH (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3455", Title: "Width, diameter, or second dimension, feet", Label: "WIDTH (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3460", Title: "Width, diameter, or second dimension, yard", Label: "WIDTH (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3461", Title: "Width, diameter, or second dimension, yard", Label: "WIDTH (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3462", Title: "Width, diameter, or second dimension, yard", Label: "WIDTH (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3463", Title: "Width, diameter, or second dimension, yard", Label: "WIDTH (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3464", Title: "Width, diameter, or second dimension, yard", Label: "WIDTH (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3465", Title: "Width, diameter, or second dimension, yard", Label: "WIDTH (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3470", Title: "Depth, thickness, height, or third dimension, inches", Label: "HEIGHT (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3471", Title: "Depth, thickness, height, or third dimension, inches", Label: "HEIGHT (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3472", Title: "Depth, thickness, height, or third dimension, inches", Label: "HEIGHT (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3473", Title: "Depth, thickness, height, or third dimension, inches", Label: "HEIGHT (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3474", Title: "Depth, thickness, height, or third dimension, inches", Label: "HEIGHT (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3475", Title: "Depth, thickness, height, or third dimension, inches", Label: "HEIGHT (in), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3480", Title: "Depth, thickness, height, or third dimension, feet", Label: "HEIGHT (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3481", Title: "Depth, thickness, height, or third dimension, feet", Label: "HEIGHT (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3482", Title: "Depth, thickness, height, or third dimension, feet", Label: "HEIGHT (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3483", Title: "Depth, thickness, height, or third dimension, feet", Label: "HEIGHT (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3484", Title: "Depth, thickness, height, or third dimension, feet", Label: "HEIGHT (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3485", Title: "Depth, thickness, height, or third dimension, feet", Label: "HEIGHT (ft), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3490", Title: "Depth, thickness, height, or third dimension, yards", Label: "HEIGHT (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3491", Title: "Depth, thickness, height, or third dimension, yards", Label: "HEIGHT (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3492", Title: "Depth, thickness, height, or third dimension, yards", Label: "HEIGHT (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3493", Title: "Depth, thickness, height, or third dimension, yards", Label: "HEIGHT (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3494", Title: "Depth, thickness, height, or third dimension, yards", Label: "HEIGHT (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3495", Title: "Depth, thickness, height, or third dimension, yards", Label: "HEIGHT (yd), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3500", Title: "Area, square inches (variable measure trade item)", Label: "AREA (in^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3501", Title: "Area, square inches (variable measure trade item)", Label: "AREA (in^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3502", Title: "Area, square inches (variable measure trade item)", Label: "AREA (in^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3503", Title: "Area, square inches (variable measure trade item)", Label: "AREA (in^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3504", Title: "Area, square inches (variable measure trade item)", Label: "AREA (in^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3505", Title: "Area, square inches (variable measure trade item)", Label: "AREA (in^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3510", Title: "Area, square feet (variable measure trade item)", Label: "AREA (ft^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3511", Title: "Area, square feet (variable measure trade item)", Label: "AREA (ft^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3512", Title: "Area, square feet (variable measure trade item)", Label: "AREA (ft^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3513", Title: "Area, square feet (variable measure trade item)", Label: "AREA (ft^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3514", Title: "Area, square feet (variable measure trade item)", Label: "AREA (ft^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3515", Title: "Area, square feet (variable measure trade item)", Label: "AREA (ft^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3520", Title: "Area, square yards (variable measure trade item)", Label: "AREA (yd^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3521", Title: "Area, square yards (variable measure trade item)", Label: "AREA (yd^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3522", Title: "Area, square yards (variable measure trade item)", Label: "AREA (yd^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3523", Title: "Area, square yards (variable measure trade item)", Label: "AREA (yd^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3524", Title: "Area, square yards (variable measure trade item)", Label: "AREA (yd^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3525", Title: "Area, square yards (variable measure trade item)", Label: "AREA (yd^2)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3530", Title: "Area, square inches", Label: "AREA (in^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3531", Title: "Area, square inches", Label: "AREA (in^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3532", Title: "Area, square inches", Label: "AREA (in^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3533", Title: "Area, square inches", Label: "AREA (in^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3534", Title: "Area, square inches", Label: "AREA (in^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3535", Title: "Area, square inches", Label: "AREA (in^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3540", Title: "Area, square feet", Label: "AREA (ft^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3541", Title: "Area, square feet", Label: "AREA (ft^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3542", Title: "Area, square feet", Label: "AREA (ft^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3543", Title: "Area, square feet", Label: "AREA (ft^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3544", Title: "Area, square feet", Label: "AREA (ft^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3545", Title: "Area, square feet", Label: "AREA (ft^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3550", Title: "Area, square yards", Label: "AREA (yd^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3551", Title: "Area, square yards", Label: "AREA (yd^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3552", Title: "Area, square yards", Label: "AREA (yd^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3553", Title: "Area, square yards", Label: "AREA (yd^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3554", Title: "Area, square yards", Label: "AREA (yd^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3555", Title: "Area, square yards", Label: "AREA (yd^2), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3560", Title: "Net weight, troy ounces (variable measure trade item)", Label: "NET WEIGHT (t oz)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3561", Title: "Net weight, troy ounces (variable measure trade item)", Label: "NET WEIGHT (t oz)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3562", Title: "Net weight, troy ounces (variable measure trade item)", Label: "NET WEIGHT (t oz)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3563", Title: "Net weight, troy ounces (variable measure trade item)", Label: "NET WEIGHT (t oz)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3564", Title: "Net weight, troy ounces (variable measure trade item)", Label: "NET WEIGHT (t oz)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3565", Title: "Net weight, troy ounces (variable measure trade item)", Label: "NET WEIGHT (t oz)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3570", Title: "Net weight (or volume), ounces (variable measure trade item)", Label: "NET VOLUME (oz)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3571", Title: "Net weight (or volume), ounces (variable measure trade item)", Label: "NET VOLUME (oz)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3572", Title: "Net weight (or volume), ounces (variable measure trade item)", Label: "NET VOLUME (oz)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3573", Title: "Net weight (or volume), ounces (variable measure trade item)", Label: "NET VOLUME (oz)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3574", Title: "Net weight (or volume), ounces (variable measure trade item)", Label: "NET VOLUME (oz)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3575", Title: "Net weight (or volume), ounces (variable measure trade item)", Label: "NET VOLUME (oz)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3600", Title: "Net volume, quarts (variable measure trade item)", Label: "NET VOLUME (qt)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3601", Title: "Net volume, quarts (variable measure trade item)", Label: "NET VOLUME (qt)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3602", Title: "Net volume, quarts (variable measure trade item)", Label: "NET VOLUME (qt)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3603", Title: "Net volume, quarts (variable measure trade item)", Label: "NET VOLUME (qt)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3604", Title: "Net volume, quarts (variable measure trade item)", Label: "NET VOLUME (qt)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3605", Title: "Net volume, quarts (variable measure trade item)", Label: "NET VOLUME (qt)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3610", Title: "Net volume, gallons U.S. (variable measure trade item)", Label: "NET VOLUME (gal.)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3611", Title: "Net volume, gallons U.S. (variable measure trade item)", Label: "NET VOLUME (gal.)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3612", Title: "Net volume, gallons U.S. (variable measure trade item)", Label: "NET VOLUME (gal.)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3613", Title: "Net volume, gallons U.S. (variable measure trade item)", Label: "NET VOLUME (gal.)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3614", Title: "Net volume, gallons U.S. (variable measure trade item)", Label: "NET VOLUME (gal.)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3615", Title: "Net volume, gallons U.S. (variable measure trade item)", Label: "NET VOLUME (gal.)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3620", Title: "Logistic volume, quarts", Label: "VOLUME (qt), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3621", Title: "Logistic volume, quarts", Label: "VOLUME (qt), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3622", Title: "Logistic volume, quarts", Label: "VOLUME (qt), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3623", Title: "Logistic volume, quarts", Label: "VOLUME (qt), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3624", Title: "Logistic volume, quarts", Label: "VOLUME (qt), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3625", Title: "Logistic volume, quarts", Label: "VOLUME (qt), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3630", Title: "Logistic volume, gallons U.S.", Label: "VOLUME (gal.), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3631", Title: "Logistic volume, gallons U.S.", Label: "VOLUME (gal.), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3632", Title: "Logistic volume, gallons U.S.", Label: "VOLUME (gal.), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3633", Title: "Logistic volume, gallons U.S.", Label: "VOLUME (gal.), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3634", Title: "Logistic volume, gallons U.S.", Label: "VOLUME (gal.), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3635", Title: "Logistic volume, gallons U.S.", Label: "VOLUME (gal.), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3640", Title: "Net volume, cubic inches (variable measure trade item)", Label: "VOLUME (in^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3641", Title: "Net volume, cubic inches (variable measure trade item)", Label: "VOLUME (in^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3642", Title: "Net volume, cubic inches (variable measure trade item)", Label: "VOLUME (in^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3643", Title: "Net volume, cubic inches (variable measure trade item)", Label: "VOLUME (in^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3644", Title: "Net volume, cubic inches (variable measure trade item)", Label: "VOLUME (in^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3645", Title: "Net volume, cubic inches (variable measure trade item)", Label: "VOLUME (in^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3650", Title: "Net volume, cubic feet (variable measure trade item)", Label: "VOLUME (ft^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3651", Title: "Net volume, cubic feet (variable measure trade item)", Label: "VOLUME (ft^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3652", Title: "Net volume, cubic feet (variable measure trade item)", Label: "VOLUME (ft^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3653", Title: "Net volume, cubic feet (variable measure trade item)", Label: "VOLUME (ft^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3654", Title: "Net volume, cubic feet (variable measure trade item)", Label: "VOLUME (ft^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3655", Title: "Net volume, cubic feet (variable measure trade item)", Label: "VOLUME (ft^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3660", Title: "Net volume, cubic yards (variable measure trade item)", Label: "VOLUME (yd^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3661", Title: "Net volume, cubic yards (variable measure trade item)", Label: "VOLUME (yd^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3662", Title: "Net volume, cubic yards (variable measure trade item)", Label: "VOLUME (yd^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3663", Title: "Net volume, cubic yards (variable measure trade item)", Label: "VOLUME (yd^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3664", Title: "Net volume, cubic yards (variable measure trade item)", Label: "VOLUME (yd^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3665", Title: "Net volume, cubic yards (variable measure trade item)", Label: "VOLUME (yd^3)", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3670", Title: "Logistic volume, cubic inches", Label: "VOLUME (in^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3671", Title: "Logistic volume, cubic inches", Label: "VOLUME (in^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3672", Title: "Logistic volume, cubic inches", Label: "VOLUME (in^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3673", Title: "Logistic volume, cubic inches", Label: "VOLUME (in^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3674", Title: "Logistic volume, cubic inches", Label: "VOLUME (in^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3675", Title: "Logistic volume, cubic inches", Label: "VOLUME (in^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3680", Title: "Logistic volume, cubic feet", Label: "VOLUME (ft^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3681", Title: "Logistic volume, cubic feet", Label: "VOLUME (ft^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3682", Title: "Logistic volume, cubic feet", Label: "VOLUME (ft^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3683", Title: "Logistic volume, cubic feet", Label: "VOLUME (ft^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3684", Title: "Logistic volume, cubic feet", Label: "VOLUME (ft^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3685", Title: "Logistic volume, cubic feet", Label: "VOLUME (ft^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3690", Title: "Logistic volume, cubic yards", Label: "VOLUME (yd^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3691", Title: "Logistic volume, cubic yards", Label: "VOLUME (yd^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3692", Title: "Logistic volume, cubic yards", Label: "VOLUME (yd^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3693", Title: "Logistic volume, cubic yards", Label: "VOLUME (yd^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3694", Title: "Logistic volume, cubic yards", Label: "VOLUME (yd^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "3695", Title: "Logistic volume, cubic yards", Label: "VOLUME (yd^3), log", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "37", Title: "Count of trade items", Label: "COUNT", Kind: DataAttribute, Format: "N..8", FixedLength: false, Segments: []Segment{nv(8)}},
	{AI: "3900", Title: "Applicable amount payable or Coupon value, local currency", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3901", Title: "Applicable amount payable or Coupon value, local currency", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3902", Title: "Applicable amount payable or Coupon value, local currency", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3903", Title: "Applicable amount payable or Coupon value, local currency", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3904", Title: "Applicable amount payable or Coupon value, local currency", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3905", Title: "Applicable amount payable or Coupon value, local currency", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3906", Title: "Applicable amount payable or Coupon value, local currency", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3907", Title: "Applicable amount payable or Coupon value, local currency", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3908", Title: "Applicable amount payable or Coupon value, local currency", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3909", Title: "Applicable amount payable or Coupon value, local currency", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3910", Title: "Applicable amount payable with ISO currency code", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3911", Title: "Applicable amount payable with ISO currency code", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3912", Title: "Applicable amount payable with ISO currency code", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3913", Title: "Applicable amount payable with ISO currency code", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3914", Title: "Applicable amount payable with ISO currency code", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3915", Title: "Applicable amount payable with ISO currency code", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3916", Title: "Applicable amount payable with ISO currency code", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3917", Title: "Applicable amount payable with ISO currency code", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3918", Title: "Applicable amount payable with ISO currency code", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3919", Title: "Applicable amount payable with ISO currency code", Label: "AMOUNT", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3920", Title: "Applicable amount payable, single monetary area (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3921", Title: "Applicable amount payable, single monetary area (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3922", Title: "Applicable amount payable, single monetary area (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3923", Title: "Applicable amount payable, single monetary area (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3924", Title: "Applicable amount payable, single monetary area (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3925", Title: "Applicable amount payable, single monetary area (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3926", Title: "Applicable amount payable, single monetary area (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3927", Title: "Applicable amount payable, single monetary area (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3928", Title: "Applicable amount payable, single monetary area (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3929", Title: "Applicable amount payable, single monetary area (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{nv(15)}},
	{AI: "3930", Title: "Applicable amount payable with ISO currency code (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3931", Title: "Applicable amount payable with ISO currency code (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3932", Title: "Applicable amount payable with ISO currency code (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3933", Title: "Applicable amount payable with ISO currency code (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3934", Title: "Applicable amount payable with ISO currency code (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3935", Title: "Applicable amount payable with ISO currency code (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3936", Title: "Applicable amount payable with ISO currency code (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3937", Title: "Applicable amount payable with ISO currency code (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3938", Title: "Applicable amount payable with ISO currency code (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3939", Title: "Applicable amount payable with ISO currency code (variable measure trade item)", Label: "PRICE", Kind: DataAttribute, Format: "N..15", FixedLength: false, Segments: []Segment{n(3), nv(15)}},
	{AI: "3940", Title: "Percentage discount of a coupon", Label: "PRCNT OFF", Kind: DataAttribute, Format: "N4", FixedLength: true, Segments: []Segment{n(4)}},
	{AI: "3941", Title: "Percentage discount of a coupon", Label: "PRCNT OFF", Kind: DataAttribute, Format: "N4", FixedLength: true, Segments: []Segment{n(4)}},
	{AI: "3942", Title: "Percentage discount of a coupon", Label: "PRCNT OFF", Kind: DataAttribute, Format: "N4", FixedLength: true, Segments: []Segment{n(4)}},
	{AI: "3943", Title: "Percentage discount of a coupon", Label: "PRCNT OFF", Kind: DataAttribute, Format: "N4", FixedLength: true, Segments: []Segment{n(4)}},
	{AI: "400", Title: "Customer's purchase order number", Label: "ORDER NUMBER", Kind: DataAttribute, Format: "X..30", FixedLength: false, Segments: []Segment{xv(30)}},
	{AI: "401", Title: "Global Identification Number for Consignment (GINC)", Label: "GINC", ShortCode: "ginc", Kind: Identifier, Format: "X..30", FixedLength: false, Segments: []Segment{xv(30)}},
	{AI: "402", Title: "Global Shipment Identification Number (GSIN)", Label: "GSIN", ShortCode: "gsin", Kind: Identifier, Format: "N17", FixedLength: true, CheckDigit: LastDigit, Segments: []Segment{n(17)}},
	{AI: "403", Title: "Routing code", Label: "ROUTE", Kind: DataAttribute, Format: "X..30", FixedLength: false, Segments: []Segment{xv(30)}},
	{AI: "410", Title: "Ship to - Deliver to Global Location Number", Label: "SHIP TO LOC", Kind: DataAttribute, Format: "N13", FixedLength: true, CheckDigit: LastDigit, Segments: []Segment{n(13)}},
	{AI: "411", Title: "Bill to - Invoice to Global Location Number", Label: "BILL TO", Kind: DataAttribute, Format: "N13", FixedLength: true, CheckDigit: LastDigit, Segments: []Segment{n(13)}},
	{AI: "412", Title: "Purchased from Global Location Number", Label: "PURCHASE FROM", Kind: DataAttribute, Format: "N13", FixedLength: true, CheckDigit: LastDigit, Segments: []Segment{n(13)}},
	{AI: "413", Title: "Ship for - Deliver for - Forward to Global Location Number", Label: "SHIP FOR LOC", Kind: DataAttribute, Format: "N13", FixedLength: true, CheckDigit: LastDigit, Segments: []Segment{n(13)}},
	{AI: "414", Title: "Identification of a physical location - Global Location Number", Label: "LOC No", ShortCode: "gln", Kind: Identifier, Format: "N13", FixedLength: true, CheckDigit: LastDigit, Qualifiers: []string{"254"}, Segments: []Segment{n(13)}},
	{AI: "415", Title: "Global Location Number of the invoicing party", Label: "PAY TO", ShortCode: "payto", Kind: Identifier, Format: "N13", FixedLength: true, CheckDigit: LastDigit, Segments: []Segment{n(13)}},
	{AI: "416", Title: "GLN of the production or service location", Label: "PROD/SERV LOC", Kind: DataAttribute, Format: "N13", FixedLength: true, CheckDigit: LastDigit, Segments: []Segment{n(13)}},
	{AI: "420", Title: "Ship to - Deliver to postal code within a single postal authority", Label: "SHIP TO POST", Kind: DataAttribute, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "421", Title: "Ship to - Deliver to postal code with ISO country code", Label: "SHIP TO POST", Kind: DataAttribute, Format: "N3+X..9", FixedLength: false, Segments: []Segment{n(3), xv(9)}},
	{AI: "422", Title: "Country of origin of a trade item", Label: "ORIGIN", Kind: DataAttribute, Format: "N3", FixedLength: true, Segments: []Segment{n(3)}},
	{AI: "423", Title: "Country of initial processing", Label: "COUNTRY - INITIAL PROCESS.", Kind: DataAttribute, Format: "N3+N..12", FixedLength: false, Segments: []Segment{n(3), nv(12)}},
	{AI: "424", Title: "Country of processing", Label: "COUNTRY - PROCESS.", Kind: DataAttribute, Format: "N3", FixedLength: true, Segments: []Segment{n(3)}},
	{AI: "425", Title: "Country of disassembly", Label: "COUNTRY - DISASSEMBLY", Kind: DataAttribute, Format: "N3+N..12", FixedLength: false, Segments: []Segment{n(3), nv(12)}},
	{AI: "426", Title: "Country covering full process chain", Label: "COUNTRY - FULL PROCESS", Kind: DataAttribute, Format: "N3", FixedLength: true, Segments: []Segment{n(3)}},
	{AI: "427", Title: "Country subdivision Of origin", Label: "ORIGIN SUBDIVISION", Kind: DataAttribute, Format: "X..3", FixedLength: false, Segments: []Segment{xv(3)}},
	{AI: "7001", Title: "NATO Stock Number (NSN)", Label: "NSN", Kind: DataAttribute, Format: "N13", FixedLength: true, Segments: []Segment{n(13)}},
	{AI: "7002", Title: "UN/ECE meat carcasses and cuts classification", Label: "MEAT CUT", Kind: DataAttribute, Format: "X..30", FixedLength: false, Segments: []Segment{xv(30)}},
	{AI: "7003", Title: "Expiration date and time", Label: "EXPIRY TIME", ShortCode: "expdt", Kind: DataAttribute, Format: "N10", FixedLength: true, Segments: []Segment{n(10)}},
	{AI: "7004", Title: "Active potency", Label: "ACTIVE POTENCY", Kind: DataAttribute, Format: "N..4", FixedLength: false, Segments: []Segment{nv(4)}},
	{AI: "7005", Title: "Catch area", Label: "CATCH AREA", Kind: DataAttribute, Format: "X..12", FixedLength: false, Segments: []Segment{xv(12)}},
	{AI: "7006", Title: "First freeze date", Label: "FIRST FREEZE DATE", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "7007", Title: "Harvest date", Label: "HARVEST DATE", Kind: DataAttribute, Format: "N6..12", FixedLength: false, Segments: []Segment{n(6), nv(6)}},
	{AI: "7008", Title: "Species for fishery purposes", Label: "AQUATIC SPECIES", Kind: DataAttribute, Format: "X..3", FixedLength: false, Segments: []Segment{xv(3)}},
	{AI: "7009", Title: "Fishing gear type", Label: "FISHING GEAR TYPE", Kind: DataAttribute, Format: "X..10", FixedLength: false, Segments: []Segment{xv(10)}},
	{AI: "7010", Title: "Production method", Label: "PROD METHOD", Kind: DataAttribute, Format: "X..2", FixedLength: false, Segments: []Segment{xv(2)}},
	{AI: "7020", Title: "Refurbishment lot ID", Label: "REFURB LOT", Kind: DataAttribute, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "7021", Title: "Functional status", Label: "FUNC STAT", Kind: DataAttribute, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "7022", Title: "Revision status", Label: "REV STAT", Kind: DataAttribute, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "7023", Title: "Global Individual Asset Identifier (GIAI) of an assembly", Label: "GIAI - ASSEMBLY", Kind: DataAttribute, Format: "X..30", FixedLength: false, Segments: []Segment{xv(30)}},
	{AI: "7030", Title: "Number of processor with ISO Country Code", Label: "PROCESSOR # 0", Kind: DataAttribute, Format: "X..27", FixedLength: false, Segments: []Segment{n(3), xv(27)}},
	{AI: "7031", Title: "Number of processor with ISO Country Code", Label: "PROCESSOR # 1", Kind: DataAttribute, Format: "X..27", FixedLength: false, Segments: []Segment{n(3), xv(27)}},
	{AI: "7032", Title: "Number of processor with ISO Country Code", Label: "PROCESSOR # 2", Kind: DataAttribute, Format: "X..27", FixedLength: false, Segments: []Segment{n(3), xv(27)}},
	{AI: "7033", Title: "Number of processor with ISO Country Code", Label: "PROCESSOR # 3", Kind: DataAttribute, Format: "X..27", FixedLength: false, Segments: []Segment{n(3), xv(27)}},
	{AI: "7034", Title: "Number of processor with ISO Country Code", Label: "PROCESSOR # 4", Kind: DataAttribute, Format: "X..27", FixedLength: false, Segments: []Segment{n(3), xv(27)}},
	{AI: "7035", Title: "Number of processor with ISO Country Code", Label: "PROCESSOR # 5", Kind: DataAttribute, Format: "X..27", FixedLength: false, Segments: []Segment{n(3), xv(27)}},
	{AI: "7036", Title: "Number of processor with ISO Country Code", Label: "PROCESSOR # 6", Kind: DataAttribute, Format: "X..27", FixedLength: false, Segments: []Segment{n(3), xv(27)}},
	{AI: "7037", Title: "Number of processor with ISO Country Code", Label: "PROCESSOR # 7", Kind: DataAttribute, Format: "X..27", FixedLength: false, Segments: []Segment{n(3), xv(27)}},
	{AI: "7038", Title: "Number of processor with ISO Country Code", Label: "PROCESSOR # 8", Kind: DataAttribute, Format: "X..27", FixedLength: false, Segments: []Segment{n(3), xv(27)}},
	{AI: "7039", Title: "Number of processor with ISO Country Code", Label: "PROCESSOR # 9", Kind: DataAttribute, Format: "X..27", FixedLength: false, Segments: []Segment{n(3), xv(27)}},
	{AI: "710", Title: "National Healthcare Reimbursement Number (NHRN) - Germany PZN", Label: "NHRN PZN", Kind: DataAttribute, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "711", Title: "National Healthcare Reimbursement Number (NHRN) - France CIP", Label: "NHRN CIP", Kind: DataAttribute, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "712", Title: "National Healthcare Reimbursement Number (NHRN) - Spain CN", Label: "NHRN CN", Kind: DataAttribute, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "713", Title: "National Healthcare Reimbursement Number (NHRN) - Brasil DRN", Label: "NHRN DRN", Kind: DataAttribute, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "714", Title: "National Healthcare Reimbursement Number (NHRN) - Portugal AIM", Label: "NHRN AIM", Kind: DataAttribute, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "7230", Title: "Certification reference # 0", Label: "CERT # 0", Kind: DataAttribute, Format: "X2+X..28", FixedLength: false, Segments: []Segment{xv(30)}, pattern: `([\x21-\x22\x25-\x3F\x41-\x5A\x5F\x61-\x7A]{2,30})`},
	{AI: "7231", Title: "Certification reference # 1", Label: "CERT # 1", Kind: DataAttribute, Format: "X2+X..28", FixedLength: false, Segments: []Segment{xv(30)}, pattern: `([\x21-\x22\x25-\x3F\x41-\x5A\x5F\x61-\x7A]{2,30})`},
	{AI: "7232", Title: "Certification reference # 2", Label: "CERT # 2", Kind: DataAttribute, Format: "X2+X..28", FixedLength: false, Segments: []Segment{xv(30)}, pattern: `([\x21-\x22\x25-\x3F\x41-\x5A\x5F\x61-\x7A]{2,30})`},
	{AI: "7233", Title: "Certification reference # 3", Label: "CERT # 3", Kind: DataAttribute, Format: "X2+X..28", FixedLength: false, Segments: []Segment{xv(30)}, pattern: `([\x21-\x22\x25-\x3F\x41-\x5A\x5F\x61-\x7A]{2,30})`},
	{AI: "7234", Title: "Certification reference # 4", Label: "CERT # 4", Kind: DataAttribute, Format: "X2+X..28", FixedLength: false, Segments: []Segment{xv(30)}, pattern: `([\x21-\x22\x25-\x3F\x41-\x5A\x5F\x61-\x7A]{2,30})`},
	{AI: "7235", Title: "Certification reference # 5", Label: "CERT # 5", Kind: DataAttribute, Format: "X2+X..28", FixedLength: false, Segments: []Segment{xv(30)}, pattern: `([\x21-\x22\x25-\x3F\x41-\x5A\x5F\x61-\x7A]{2,30})`},
	{AI: "7236", Title: "Certification reference # 6", Label: "CERT # 6", Kind: DataAttribute, Format: "X2+X..28", FixedLength: false, Segments: []Segment{xv(30)}, pattern: `([\x21-\x22\x25-\x3F\x41-\x5A\x5F\x61-\x7A]{2,30})`},
	{AI: "7237", Title: "Certification reference # 7", Label: "CERT # 7", Kind: DataAttribute, Format: "X2+X..28", FixedLength: false, Segments: []Segment{xv(30)}, pattern: `([\x21-\x22\x25-\x3F\x41-\x5A\x5F\x61-\x7A]{2,30})`},
	{AI: "7238", Title: "Certification reference # 8", Label: "CERT # 8", Kind: DataAttribute, Format: "X2+X..28", FixedLength: false, Segments: []Segment{xv(30)}, pattern: `([\x21-\x22\x25-\x3F\x41-\x5A\x5F\x61-\x7A]{2,30})`},
	{AI: "7239", Title: "Certification reference # 9", Label: "CERT # 9", Kind: DataAttribute, Format: "X2+X..28", FixedLength: false, Segments: []Segment{xv(30)}, pattern: `([\x21-\x22\x25-\x3F\x41-\x5A\x5F\x61-\x7A]{2,30})`},
	{AI: "8001", Title: "Roll products (width, length, core diameter, direction, splices)", Label: "DIMENSIONS", Kind: DataAttribute, Format: "N14", FixedLength: true, Segments: []Segment{n(14)}},
	{AI: "8002", Title: "Cellular mobile telephone identifier", Label: "CMT No", Kind: DataAttribute, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "8003", Title: "Global Returnable Asset Identifier (GRAI)", Label: "GRAI", ShortCode: "grai", Kind: Identifier, Format: "N14+X..16", FixedLength: false, CheckDigit: 14, Segments: []Segment{n(14), xv(16)}},
	{AI: "8004", Title: "Global Individual Asset Identifier (GIAI)", Label: "GIAI", ShortCode: "giai", Kind: Identifier, Format: "X..30", FixedLength: false, Segments: []Segment{xv(30)}},
	{AI: "8005", Title: "Price per unit of measure", Label: "PRICE PER UNIT", Kind: DataAttribute, Format: "N6", FixedLength: true, Segments: []Segment{n(6)}},
	{AI: "8006", Title: "Identification of an individual trade item piece", Label: "ITIP", ShortCode: "itip", Kind: Identifier, Format: "N14+N2+N2", FixedLength: true, CheckDigit: 14, Qualifiers: []string{"22", "10", "21"}, Segments: []Segment{n(18)}},
	{AI: "8007", Title: "International Bank Account Number (IBAN)", Label: "IBAN", Kind: DataAttribute, Format: "X..34", FixedLength: false, Segments: []Segment{xv(34)}},
	{AI: "8008", Title: "Date and time of production", Label: "PROD TIME", Kind: DataAttribute, Format: "N8+N..4", FixedLength: false, Segments: []Segment{n(8), nv(4)}},
	{AI: "8009", Title: "Optically Readable Sensor Indicator", Label: "OPT SEN", Kind: DataAttribute, Format: "X..50", FixedLength: false, Segments: []Segment{xv(50)}},
	{AI: "8010", Title: "Component/Part Identifier (CPID)", Label: "CPID", ShortCode: "cpid", Kind: Identifier, Format: "Y..30", FixedLength: false, Qualifiers: []string{"8011"}, Segments: []Segment{xv(30)}, pattern: `([\x23\x2D\x2F\x30-\x39\x41-\x5A]{0,30})`},
	{AI: "8011", Title: "Component/Part Identifier serial number (CPID SERIAL)", Label: "CPID SERIAL", ShortCode: "cpsn", Kind: Qualifier, Format: "N..12", FixedLength: false, Segments: []Segment{nv(12)}},
	{AI: "8012", Title: "Software version", Label: "VERSION", Kind: DataAttribute, Format: "X..20", FixedLength: false, Segments: []Segment{xv(20)}},
	{AI: "8013", Title: "Global Model Number (GMN)", Label: "GMN (for medical devices, the default, global data title is BUDI-DI )", Kind: DataAttribute, Format: "X..30", FixedLength: false, Segments: []Segment{xv(30)}},
	{AI: "8017", Title: "Global Service Relation Number - Provider", Label: "GSRN - PROVIDER", ShortCode: "gsrnp", Kind: Identifier, Format: "N18", FixedLength: true, CheckDigit: LastDigit, Qualifiers: []string{"8019"}, Segments: []Segment{n(18)}},
	{AI: "8018", Title: "Global Service Relation Number - Recipient", Label: "GSRN - RECIPIENT", ShortCode: "gsrn", Kind: Identifier, Format: "N18", FixedLength: true, CheckDigit: LastDigit, Qualifiers: []string{"8019"}, Segments: []Segment{n(18)}},
	{AI: "8019", Title: "Service Relation Instance Number (SRIN)", Label: "SRIN", ShortCode: "srin", Kind: Qualifier, Format: "N..10", FixedLength: false, Segments: []Segment{nv(10)}},
	{AI: "8020", Title: "Payment slip reference number", Label: "REF No", Kind: DataAttribute, Format: "X..25", FixedLength: false, Segments: []Segment{xv(25)}},
	{AI: "8026", Title: "Identification of pieces of a trade item contained in a logistics unit", Label: "ITIP CONTENT", Kind: DataAttribute, Format: "N14+N2+N2", FixedLength: true, CheckDigit: 14, Segments: []Segment{n(18)}},
	{AI: "8110", Title: "Coupon code identification for use in North America", Label: "", Kind: DataAttribute, Format: "X..70", FixedLength: false, Segments: []Segment{xv(70)}},
	{AI: "8111", Title: "Loyalty points of a coupon", Label: "POINTS", Kind: DataAttribute, Format: "N4", FixedLength: true, Segments: []Segment{n(4)}},
	{AI: "8112", Title: "Paperless coupon code identification for use in North America", Label: "", Kind: DataAttribute, Format: "X..70", FixedLength: false, Segments: []Segment{xv(70)}},
	{AI: "8200", Title: "Extended Packaging URL", Label: "PRODUCT URL", Kind: DataAttribute, Format: "X..70", FixedLength: false, Segments: []Segment{xv(70)}},
	{AI: "90", Title: "Information mutually agreed between trading partners", Label: "INTERNAL", Kind: DataAttribute, Format: "X..30", FixedLength: false, Segments: []Segment{xv(30)}},
	{AI: "91", Title: "Company internal information", Label: "INTERNAL", Kind: DataAttribute, Format: "X..90", FixedLength: false, Segments: []Segment{xv(90)}},
	{AI: "92", Title: "Company internal information", Label: "INTERNAL", Kind: DataAttribute, Format: "X..90", FixedLength: false, Segments: []Segment{xv(90)}},
	{AI: "93", Title: "Company internal information", Label: "INTERNAL", Kind: DataAttribute, Format: "X..90", FixedLength: false, Segments: []Segment{xv(90)}},
	{AI: "94", Title: "Company internal information", Label: "INTERNAL", Kind: DataAttribute, Format: "X..90", FixedLength: false, Segments: []Segment{xv(90)}},
	{AI: "95", Title: "Company internal information", Label: "INTERNAL", Kind: DataAttribute, Format: "X..90", FixedLength: false, Segments: []Segment{xv(90)}},
	{AI: "96", Title: "Company internal information", Label: "INTERNAL", Kind: DataAttribute, Format: "X..90", FixedLength: false, Segments: []Segment{xv(90)}},
	{AI: "97", Title: "Company internal information", Label: "INTERNAL", Kind: DataAttribute, Format: "X..90", FixedLength: false, Segments: []Segment{xv(90)}},
	{AI: "98", Title: "Company internal information", Label: "INTERNAL", Kind: DataAttribute, Format: "X..90", FixedLength: false, Segments: []Segment{xv(90)}},
	{AI: "99", Title: "Company internal information", Label: "INTERNAL", Kind: DataAttribute, Format: "X..90", FixedLength: false, Segments: []Segment{xv(90)}},
}
