package catalog

// categoryEntry ties a category name to the SKUs it contains. The list is the
// closed set the assistant may select from; order is presentation order.
type categoryEntry struct {
	name string
	skus []string
}

var categoryMap = []categoryEntry{
	{
		name: "Business & Travel",
		skus: []string{
			"XPS-9340",
			"ThinkPad-X1-Carbon-Gen11",
			"Spectre-x360-14-2023",
			"MacBook-Air-15-2023",
			"ExpertCenter-D9-D900",
		},
	},
	{
		name: "Hybrid & 2-in-1",
		skus: []string{
			"Yoga-9i-Gen8",
			"Spectre-x360-14-2023",
			"XPS-9340",
			"MacBook-Air-15-2023",
			"Envy-16-2023",
		},
	},
	{
		name: "Creator Laptops",
		skus: []string{
			"XPS-9530",
			"ProArt-Studiobook-16-OLED-H7604",
			"Envy-16-2023",
			"MacBook-Pro-14-M3Pro-2023",
			"MacBook-Pro-16-M3Max-2023",
			"ProArt-Station-PD500TC",
		},
	},
	{
		name: "Creative Powerhouse",
		skus: []string{
			"XPS-9730",
			"ZBook-Studio-16-G10",
			"ThinkPad-P1-Gen7",
			"MacBook-Pro-16-M3Max-2023",
			"ProArt-Studiobook-16-OLED-H7604",
			"Precision-5690",
		},
	},
	{
		name: "Gaming & High Performance",
		skus: []string{
			"Alienware-m18-R1",
			"Legion-Pro-7i-Gen8",
			"ROG-Zephyrus-G14-GA402-2023",
			"ROG-Strix-Scar-16-G634",
			"Omen-16-2023",
		},
	},
	{
		name: "Mobile Workstations",
		skus: []string{
			"Precision-5690",
			"Precision-7780",
			"ThinkPad-P16-Gen2",
			"ZBook-Fury-16-G10",
			"ThinkPad-P1-Gen7",
		},
	},
	{
		name: "Desktop Workstations",
		skus: []string{
			"Precision-7875",
			"ThinkStation-P5-30GSS0WW00",
			"ThinkStation-P7-30GSZ0WW00",
			"Z4-G5",
			"Z8-Fury-G5",
			"Mac-Studio-M2-Ultra-2023",
			"Mac-Pro-M2-Ultra-2023",
		},
	},
	{
		name: "Heavy Engineering & Simulation",
		skus: []string{
			"Precision-7780",
			"ZBook-Fury-16-G10",
			"Z8-Fury-G5",
			"ThinkStation-P7-30GSZ0WW00",
			"Mac-Studio-M2-Ultra-2023",
		},
	},
}
