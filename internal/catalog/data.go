package catalog

// seedProducts is the storefront's static inventory.
var seedProducts = []Product{
	{
		ID:            1,
		Name:          "iPhone 15 Pro Max",
		Price:         1199,
		OriginalPrice: ptr(1299),
		Image:         "https://images.pexels.com/photos/788946/pexels-photo-788946.jpeg",
		Category:      "Smartphones",
		Brand:         "Apple",
		Rating:        4.8,
		Reviews:       2847,
		Description:   "The most advanced iPhone ever with titanium design and A17 Pro chip.",
		Features: []string{
			"6.7-inch Super Retina XDR display",
			"A17 Pro chip with 6-core GPU",
			"Pro camera system with 48MP main",
			"Up to 29 hours video playback",
			"Titanium design",
		},
		Specifications: map[string]string{
			"Display":   "6.7-inch OLED",
			"Processor": "A17 Pro",
			"Storage":   "256GB",
			"Camera":    "48MP Triple Camera",
			"Battery":   "4441 mAh",
			"OS":        "iOS 17",
		},
		InStock:    true,
		IsNew:      true,
		IsFeatured: true,
	},
	{
		ID:          2,
		Name:        "MacBook Pro 16-inch",
		Price:       2499,
		Image:       "https://images.pexels.com/photos/205421/pexels-photo-205421.jpeg",
		Category:    "Laptops",
		Brand:       "Apple",
		Rating:      4.9,
		Reviews:     1523,
		Description: "Supercharged by M3 Pro and M3 Max chips for demanding workflows.",
		Features: []string{
			"16.2-inch Liquid Retina XDR display",
			"M3 Pro chip with 12-core CPU",
			"18GB unified memory",
			"22-hour battery life",
			"Six-speaker sound system",
		},
		Specifications: map[string]string{
			"Display":   "16.2-inch Liquid Retina XDR",
			"Processor": "Apple M3 Pro",
			"Memory":    "18GB",
			"Storage":   "512GB SSD",
			"Graphics":  "18-core GPU",
			"Weight":    "4.7 pounds",
		},
		InStock:    true,
		IsFeatured: true,
	},
	{
		ID:            3,
		Name:          "AirPods Pro (2nd Gen)",
		Price:         249,
		OriginalPrice: ptr(279),
		Image:         "https://images.pexels.com/photos/3780681/pexels-photo-3780681.jpeg",
		Category:      "Audio",
		Brand:         "Apple",
		Rating:        4.7,
		Reviews:       8934,
		Description:   "Next-level Active Noise Cancellation and Adaptive Transparency.",
		Features: []string{
			"Active Noise Cancellation",
			"Adaptive Transparency",
			"Spatial Audio with head tracking",
			"Up to 6 hours listening time",
			"MagSafe charging case",
		},
		Specifications: map[string]string{
			"Driver":           "Custom high-excursion driver",
			"Chip":             "H2 chip",
			"Battery":          "6 hours + 24 hours with case",
			"Connectivity":     "Bluetooth 5.3",
			"Water Resistance": "IPX4",
			"Weight":           "5.3g each",
		},
		InStock: true,
		IsNew:   true,
	},
	{
		ID:          4,
		Name:        "Samsung Galaxy S24 Ultra",
		Price:       1299,
		Image:       "https://images.pexels.com/photos/1092644/pexels-photo-1092644.jpeg",
		Category:    "Smartphones",
		Brand:       "Samsung",
		Rating:      4.6,
		Reviews:     3421,
		Description: "The ultimate Android flagship with S Pen and AI features.",
		Features: []string{
			"6.8-inch Dynamic AMOLED 2X",
			"Snapdragon 8 Gen 3",
			"200MP quad camera system",
			"Built-in S Pen",
			"Galaxy AI features",
		},
		Specifications: map[string]string{
			"Display":   "6.8-inch AMOLED",
			"Processor": "Snapdragon 8 Gen 3",
			"Storage":   "256GB",
			"Camera":    "200MP Quad Camera",
			"Battery":   "5000 mAh",
			"OS":        "Android 14",
		},
		InStock: true,
	},
	{
		ID:            5,
		Name:          "Sony WH-1000XM5",
		Price:         399,
		OriginalPrice: ptr(449),
		Image:         "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
		Category:      "Audio",
		Brand:         "Sony",
		Rating:        4.8,
		Reviews:       5672,
		Description:   "Industry-leading noise canceling headphones with premium sound.",
		Features: []string{
			"Industry-leading noise canceling",
			"30-hour battery life",
			"Quick Charge (3 min = 3 hours)",
			"Multipoint connection",
			"Speak-to-Chat technology",
		},
		Specifications: map[string]string{
			"Driver":             "30mm driver unit",
			"Frequency Response": "4Hz-40kHz",
			"Battery":            "30 hours",
			"Connectivity":       "Bluetooth 5.2",
			"Weight":             "250g",
			"Charging":           "USB-C",
		},
		InStock:    true,
		IsFeatured: true,
	},
	{
		ID:          6,
		Name:        "iPad Pro 12.9-inch",
		Price:       1099,
		Image:       "https://images.pexels.com/photos/1334597/pexels-photo-1334597.jpeg",
		Category:    "Tablets",
		Brand:       "Apple",
		Rating:      4.7,
		Reviews:     2156,
		Description: "The ultimate iPad experience with M2 chip and Liquid Retina XDR display.",
		Features: []string{
			"12.9-inch Liquid Retina XDR display",
			"M2 chip with 8-core CPU",
			"12MP Ultra Wide front camera",
			"Apple Pencil (2nd gen) support",
			"Magic Keyboard compatible",
		},
		Specifications: map[string]string{
			"Display":      "12.9-inch Liquid Retina XDR",
			"Processor":    "Apple M2",
			"Storage":      "128GB",
			"Camera":       "12MP Wide + 10MP Ultra Wide",
			"Battery":      "Up to 10 hours",
			"Connectivity": "Wi-Fi 6E",
		},
		InStock: false,
	},
	{
		ID:          7,
		Name:        "Google Pixel 8 Pro",
		Price:       999,
		Image:       "https://images.pexels.com/photos/1092644/pexels-photo-1092644.jpeg",
		Category:    "Smartphones",
		Brand:       "Google",
		Rating:      4.5,
		Reviews:     1832,
		Description: "AI-powered photography and pure Android experience.",
		Features: []string{
			"6.7-inch LTPO OLED display",
			"Google Tensor G3 chip",
			"50MP triple camera system",
			"Magic Eraser and Best Take",
			"7 years of OS updates",
		},
		Specifications: map[string]string{
			"Display":   "6.7-inch OLED 120Hz",
			"Processor": "Google Tensor G3",
			"Storage":   "128GB",
			"Camera":    "50MP Triple Camera",
			"Battery":   "5050 mAh",
			"OS":        "Android 14",
		},
		InStock: true,
		IsNew:   true,
	},
	{
		ID:            8,
		Name:          "OnePlus 12",
		Price:         799,
		OriginalPrice: ptr(899),
		Image:         "https://images.pexels.com/photos/788946/pexels-photo-788946.jpeg",
		Category:      "Smartphones",
		Brand:         "OnePlus",
		Rating:        4.4,
		Reviews:       987,
		Description:   "Flagship performance with OxygenOS and fast charging.",
		Features: []string{
			"6.82-inch AMOLED display",
			"Snapdragon 8 Gen 3",
			"100W SuperVOOC charging",
			"Hasselblad camera system",
			"Alert Slider",
		},
		Specifications: map[string]string{
			"Display":   "6.82-inch AMOLED 120Hz",
			"Processor": "Snapdragon 8 Gen 3",
			"Storage":   "256GB",
			"Camera":    "50MP Triple Camera",
			"Battery":   "5400 mAh",
			"OS":        "OxygenOS 14",
		},
		InStock: true,
	},
	{
		ID:          9,
		Name:        "Dell XPS 13 Plus",
		Price:       1299,
		Image:       "https://images.pexels.com/photos/205421/pexels-photo-205421.jpeg",
		Category:    "Laptops",
		Brand:       "Dell",
		Rating:      4.3,
		Reviews:     743,
		Description: "Ultrabook with InfinityEdge display and premium build quality.",
		Features: []string{
			"13.4-inch InfinityEdge display",
			"12th Gen Intel Core i7",
			"16GB LPDDR5 RAM",
			"Capacitive function row",
			"Carbon fiber palm rest",
		},
		Specifications: map[string]string{
			"Display":   "13.4-inch FHD+",
			"Processor": "Intel Core i7-1260P",
			"Memory":    "16GB",
			"Storage":   "512GB SSD",
			"Graphics":  "Intel Iris Xe",
			"Weight":    "2.73 pounds",
		},
		InStock: true,
	},
	{
		ID:          10,
		Name:        "Microsoft Surface Laptop 5",
		Price:       1599,
		Image:       "https://images.pexels.com/photos/205421/pexels-photo-205421.jpeg",
		Category:    "Laptops",
		Brand:       "Microsoft",
		Rating:      4.2,
		Reviews:     456,
		Description: "Premium laptop with touchscreen and all-day battery life.",
		Features: []string{
			"13.5-inch PixelSense touchscreen",
			"12th Gen Intel Core i7",
			"Alcantara fabric keyboard",
			"18.5-hour battery life",
			"Windows 11 Pro",
		},
		Specifications: map[string]string{
			"Display":   "13.5-inch PixelSense",
			"Processor": "Intel Core i7-1255U",
			"Memory":    "16GB",
			"Storage":   "512GB SSD",
			"Graphics":  "Intel Iris Xe",
			"Weight":    "2.86 pounds",
		},
		InStock:    true,
		IsFeatured: true,
	},
	{
		ID:          11,
		Name:        "Bose QuietComfort Ultra",
		Price:       429,
		Image:       "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
		Category:    "Audio",
		Brand:       "Bose",
		Rating:      4.6,
		Reviews:     2341,
		Description: "Premium noise-canceling headphones with spatial audio.",
		Features: []string{
			"World-class noise cancellation",
			"Immersive spatial audio",
			"24-hour battery life",
			"CustomTune technology",
			"Multipoint Bluetooth",
		},
		Specifications: map[string]string{
			"Driver":             "40mm TriPort acoustic architecture",
			"Frequency Response": "20Hz-20kHz",
			"Battery":            "24 hours",
			"Connectivity":       "Bluetooth 5.3",
			"Weight":             "254g",
			"Charging":           "USB-C",
		},
		InStock: true,
		IsNew:   true,
	},
	{
		ID:            12,
		Name:          "Sennheiser Momentum 4",
		Price:         349,
		OriginalPrice: ptr(399),
		Image:         "https://images.pexels.com/photos/3780681/pexels-photo-3780681.jpeg",
		Category:      "Audio",
		Brand:         "Sennheiser",
		Rating:        4.5,
		Reviews:       1876,
		Description:   "Audiophile-grade sound with adaptive noise cancellation.",
		Features: []string{
			"Adaptive Noise Cancellation",
			"60-hour battery life",
			"Audiophile-inspired sound",
			"Smart Control App",
			"Foldable design",
		},
		Specifications: map[string]string{
			"Driver":             "42mm dynamic drivers",
			"Frequency Response": "6Hz-22kHz",
			"Battery":            "60 hours",
			"Connectivity":       "Bluetooth 5.2",
			"Weight":             "293g",
			"Charging":           "USB-C",
		},
		InStock: true,
	},
	{
		ID:          13,
		Name:        "Samsung Galaxy Tab S9+",
		Price:       999,
		Image:       "https://images.pexels.com/photos/1334597/pexels-photo-1334597.jpeg",
		Category:    "Tablets",
		Brand:       "Samsung",
		Rating:      4.4,
		Reviews:     1234,
		Description: "Premium Android tablet with S Pen and DeX mode.",
		Features: []string{
			"12.4-inch Super AMOLED display",
			"Snapdragon 8 Gen 2",
			"S Pen included",
			"Samsung DeX mode",
			"IP68 water resistance",
		},
		Specifications: map[string]string{
			"Display":   "12.4-inch Super AMOLED",
			"Processor": "Snapdragon 8 Gen 2",
			"Storage":   "256GB",
			"Camera":    "13MP + 6MP Ultra Wide",
			"Battery":   "10090 mAh",
			"OS":        "Android 13",
		},
		InStock: true,
	},
	{
		ID:          14,
		Name:        "Microsoft Surface Pro 9",
		Price:       1299,
		Image:       "https://images.pexels.com/photos/1334597/pexels-photo-1334597.jpeg",
		Category:    "Tablets",
		Brand:       "Microsoft",
		Rating:      4.3,
		Reviews:     876,
		Description: "2-in-1 tablet with laptop performance and versatility.",
		Features: []string{
			"13-inch PixelSense Flow display",
			"12th Gen Intel Core processors",
			"All-day battery life",
			"Surface Pen compatible",
			"Laptop and tablet modes",
		},
		Specifications: map[string]string{
			"Display":   "13-inch PixelSense Flow",
			"Processor": "Intel Core i7-1255U",
			"Memory":    "16GB",
			"Storage":   "256GB SSD",
			"Camera":    "10MP rear, 5MP front",
			"Battery":   "Up to 15.5 hours",
		},
		InStock:    true,
		IsFeatured: true,
	},
	{
		ID:          15,
		Name:        "Apple Magic Keyboard",
		Price:       299,
		Image:       "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
		Category:    "Accessories",
		Brand:       "Apple",
		Rating:      4.6,
		Reviews:     2134,
		Description: "Floating cantilever design with backlit keys and trackpad.",
		Features: []string{
			"Floating cantilever design",
			"Backlit keys",
			"Built-in trackpad",
			"USB-C port for charging",
			"Full-size keyboard",
		},
		Specifications: map[string]string{
			"Compatibility": "iPad Pro 12.9-inch",
			"Connection":    "Smart Connector",
			"Backlight":     "Yes",
			"Trackpad":      "Multi-Touch",
			"Weight":        "1.57 pounds",
			"Material":      "Polyurethane",
		},
		InStock: true,
	},
	{
		ID:            16,
		Name:          "Logitech MX Master 3S",
		Price:         99,
		OriginalPrice: ptr(119),
		Image:         "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
		Category:      "Accessories",
		Brand:         "Logitech",
		Rating:        4.7,
		Reviews:       3456,
		Description:   "Advanced wireless mouse for power users and creators.",
		Features: []string{
			"8K DPI Darkfield sensor",
			"MagSpeed scroll wheel",
			"70-day battery life",
			"Multi-device workflow",
			"Customizable buttons",
		},
		Specifications: map[string]string{
			"DPI":           "8000 DPI",
			"Connectivity":  "Bluetooth, USB-C",
			"Battery":       "70 days",
			"Buttons":       "7 customizable",
			"Weight":        "141g",
			"Compatibility": "Windows, Mac, Linux",
		},
		InStock:    true,
		IsFeatured: true,
	},
}
