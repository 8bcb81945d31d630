package bank

import "github.com/quizhero/core/internal/models"

var landmarkQuestions = []models.LandmarkQuestion{
	// Level 1
	{
		ID: "lm-1-1", Level: 1, Name: "Taj Mahal",
		ImageURL: "/images/landmarks/taj-mahal.jpg",
		Prompt:   "Which monument is this white marble mausoleum in Agra?",
		Options:  []string{"Taj Mahal", "Humayun's Tomb", "Bibi Ka Maqbara", "Charminar"},
		Answer:   "Taj Mahal",
		Hint:     "It was built by Shah Jahan in memory of his wife.",
	},
	{
		ID: "lm-1-2", Level: 1, Name: "India Gate",
		ImageURL: "/images/landmarks/india-gate.jpg",
		Prompt:   "Which war memorial stands at the heart of New Delhi?",
		Options:  []string{"India Gate", "Gateway of India", "Victoria Memorial", "Jallianwala Bagh"},
		Answer:   "India Gate",
		Hint:     "It honors soldiers of the First World War.",
	},
	{
		ID: "lm-1-3", Level: 1, Name: "Gateway of India",
		ImageURL: "/images/landmarks/gateway-of-india.jpg",
		Prompt:   "Which arch monument overlooks the Arabian Sea in Mumbai?",
		Options:  []string{"Gateway of India", "India Gate", "Haji Ali Dargah", "Marine Drive Arch"},
		Answer:   "Gateway of India",
		Hint:     "It was built to commemorate a royal visit in 1911.",
	},
	{
		ID: "lm-1-4", Level: 1, Name: "Qutub Minar",
		ImageURL: "/images/landmarks/qutub-minar.jpg",
		Prompt:   "Which is the tallest brick minaret in the world, located in Delhi?",
		Options:  []string{"Qutub Minar", "Charminar", "Fateh Burj", "Chand Minar"},
		Answer:   "Qutub Minar",
		Hint:     "Its construction began under Qutb-ud-din Aibak.",
	},
	{
		ID: "lm-1-5", Level: 1, Name: "Red Fort",
		ImageURL: "/images/landmarks/red-fort.jpg",
		Prompt:   "From which fort does the Prime Minister address India on Independence Day?",
		Options:  []string{"Red Fort", "Agra Fort", "Amber Fort", "Gwalior Fort"},
		Answer:   "Red Fort",
		Hint:     "Its sandstone walls give it its name.",
	},
	{
		ID: "lm-1-6", Level: 1, Name: "Charminar",
		ImageURL: "/images/landmarks/charminar.jpg",
		Prompt:   "Which four-towered monument is the symbol of Hyderabad?",
		Options:  []string{"Charminar", "Qutub Minar", "Golconda Fort", "Mecca Masjid"},
		Answer:   "Charminar",
		Hint:     "Its name means four minarets.",
	},
	{
		ID: "lm-1-7", Level: 1, Name: "Hawa Mahal",
		ImageURL: "/images/landmarks/hawa-mahal.jpg",
		Prompt:   "Which pink sandstone palace in Jaipur is famous for its 953 windows?",
		Options:  []string{"Hawa Mahal", "City Palace", "Jal Mahal", "Amber Palace"},
		Answer:   "Hawa Mahal",
		Hint:     "Its name means Palace of Winds.",
	},
	{
		ID: "lm-1-8", Level: 1, Name: "Lotus Temple",
		ImageURL: "/images/landmarks/lotus-temple.jpg",
		Prompt:   "Which Delhi temple is shaped like a flower?",
		Options:  []string{"Lotus Temple", "Akshardham", "Birla Mandir", "ISKCON Temple"},
		Answer:   "Lotus Temple",
		Hint:     "It is a Bahá'í House of Worship.",
	},
	{
		ID: "lm-1-9", Level: 1, Name: "Victoria Memorial",
		ImageURL: "/images/landmarks/victoria-memorial.jpg",
		Prompt:   "Which white marble museum sits in the heart of Kolkata?",
		Options:  []string{"Victoria Memorial", "Howrah Bridge", "Indian Museum", "Marble Palace"},
		Answer:   "Victoria Memorial",
		Hint:     "It was built in memory of a British queen.",
	},
	{
		ID: "lm-1-10", Level: 1, Name: "Mysore Palace",
		ImageURL: "/images/landmarks/mysore-palace.jpg",
		Prompt:   "Which royal residence is illuminated by nearly 100,000 bulbs on Sundays?",
		Options:  []string{"Mysore Palace", "Bangalore Palace", "Laxmi Vilas Palace", "Umaid Bhawan"},
		Answer:   "Mysore Palace",
		Hint:     "It is the seat of the Wadiyar dynasty.",
	},

	// Level 2
	{
		ID: "lm-2-1", Level: 2, Name: "Konark Sun Temple",
		ImageURL: "/images/landmarks/konark.jpg",
		Prompt:   "Which Odisha temple is built in the shape of a giant chariot?",
		Options:  []string{"Konark Sun Temple", "Jagannath Temple", "Lingaraj Temple", "Mukteshwar Temple"},
		Answer:   "Konark Sun Temple",
		Hint:     "Its wheels double as sundials.",
	},
	{
		ID: "lm-2-2", Level: 2, Name: "Ajanta Caves",
		ImageURL: "/images/landmarks/ajanta.jpg",
		Prompt:   "Which rock-cut caves in Maharashtra are famous for Buddhist murals?",
		Options:  []string{"Ajanta Caves", "Ellora Caves", "Elephanta Caves", "Badami Caves"},
		Answer:   "Ajanta Caves",
		Hint:     "They were rediscovered by a British hunting party in 1819.",
	},
	{
		ID: "lm-2-3", Level: 2, Name: "Hampi",
		ImageURL: "/images/landmarks/hampi.jpg",
		Prompt:   "Which ruined city was the capital of the Vijayanagara Empire?",
		Options:  []string{"Hampi", "Badami", "Halebidu", "Pattadakal"},
		Answer:   "Hampi",
		Hint:     "Its stone chariot appears on the fifty rupee note.",
	},
	{
		ID: "lm-2-4", Level: 2, Name: "Meenakshi Temple",
		ImageURL: "/images/landmarks/meenakshi.jpg",
		Prompt:   "Which Madurai temple is known for its towering colorful gopurams?",
		Options:  []string{"Meenakshi Temple", "Brihadeeswara Temple", "Ramanathaswamy Temple", "Kapaleeshwarar Temple"},
		Answer:   "Meenakshi Temple",
		Hint:     "It is dedicated to a fish-eyed goddess.",
	},
	{
		ID: "lm-2-5", Level: 2, Name: "Golden Temple",
		ImageURL: "/images/landmarks/golden-temple.jpg",
		Prompt:   "Which Amritsar shrine sits at the center of a sacred pool?",
		Options:  []string{"Golden Temple", "Akal Takht", "Durgiana Temple", "Gurdwara Bangla Sahib"},
		Answer:   "Golden Temple",
		Hint:     "Its upper floors are covered in gold leaf.",
	},
	{
		ID: "lm-2-6", Level: 2, Name: "Sanchi Stupa",
		ImageURL: "/images/landmarks/sanchi.jpg",
		Prompt:   "Which Madhya Pradesh monument is one of the oldest stone structures in India?",
		Options:  []string{"Sanchi Stupa", "Bharhut Stupa", "Amaravati Stupa", "Dhamek Stupa"},
		Answer:   "Sanchi Stupa",
		Hint:     "Emperor Ashoka commissioned it.",
	},
	{
		ID: "lm-2-7", Level: 2, Name: "Howrah Bridge",
		ImageURL: "/images/landmarks/howrah.jpg",
		Prompt:   "Which cantilever bridge spans the Hooghly river?",
		Options:  []string{"Howrah Bridge", "Vidyasagar Setu", "Pamban Bridge", "Bandra-Worli Sea Link"},
		Answer:   "Howrah Bridge",
		Hint:     "It carries over 100,000 vehicles a day without nuts or bolts.",
	},
	{
		ID: "lm-2-8", Level: 2, Name: "Gol Gumbaz",
		ImageURL: "/images/landmarks/gol-gumbaz.jpg",
		Prompt:   "Which Bijapur mausoleum has one of the largest domes in the world?",
		Options:  []string{"Gol Gumbaz", "Ibrahim Rauza", "Bara Kaman", "Jama Masjid Bijapur"},
		Answer:   "Gol Gumbaz",
		Hint:     "Its whispering gallery echoes sound seven times.",
	},
	{
		ID: "lm-2-9", Level: 2, Name: "Khajuraho Temples",
		ImageURL: "/images/landmarks/khajuraho.jpg",
		Prompt:   "Which temple complex is famed for its Chandela-era sculptures?",
		Options:  []string{"Khajuraho Temples", "Konark Sun Temple", "Dilwara Temples", "Modhera Sun Temple"},
		Answer:   "Khajuraho Temples",
		Hint:     "Only about 25 of the original 85 temples survive.",
	},
	{
		ID: "lm-2-10", Level: 2, Name: "Jaisalmer Fort",
		ImageURL: "/images/landmarks/jaisalmer.jpg",
		Prompt:   "Which living fort rises from the Thar desert?",
		Options:  []string{"Jaisalmer Fort", "Mehrangarh Fort", "Chittorgarh Fort", "Kumbhalgarh Fort"},
		Answer:   "Jaisalmer Fort",
		Hint:     "Its yellow sandstone earns it the name Golden Fort.",
	},

	// Level 3
	{
		ID: "lm-3-1", Level: 3, Name: "Rani ki Vav",
		ImageURL: "/images/landmarks/rani-ki-vav.jpg",
		Prompt:   "Which Gujarat stepwell appears on the hundred rupee note?",
		Options:  []string{"Rani ki Vav", "Chand Baori", "Adalaj Stepwell", "Agrasen ki Baoli"},
		Answer:   "Rani ki Vav",
		Hint:     "A queen built it in memory of her husband.",
	},
	{
		ID: "lm-3-2", Level: 3, Name: "Brihadeeswara Temple",
		ImageURL: "/images/landmarks/brihadeeswara.jpg",
		Prompt:   "Which Thanjavur temple was built by Raja Raja Chola I?",
		Options:  []string{"Brihadeeswara Temple", "Airavatesvara Temple", "Gangaikonda Cholapuram", "Nataraja Temple"},
		Answer:   "Brihadeeswara Temple",
		Hint:     "Its vimana is among the tallest in the world.",
	},
	{
		ID: "lm-3-3", Level: 3, Name: "Ellora Kailasa Temple",
		ImageURL: "/images/landmarks/kailasa.jpg",
		Prompt:   "Which temple was carved top-down from a single rock?",
		Options:  []string{"Kailasa Temple", "Ajanta Chaitya", "Elephanta Shiva Cave", "Masroor Temple"},
		Answer:   "Kailasa Temple",
		Hint:     "It is cave 16 at Ellora.",
	},
	{
		ID: "lm-3-4", Level: 3, Name: "Chand Baori",
		ImageURL: "/images/landmarks/chand-baori.jpg",
		Prompt:   "Which Rajasthan stepwell descends thirteen storeys in a geometric pattern?",
		Options:  []string{"Chand Baori", "Rani ki Vav", "Pushkarini", "Agrasen ki Baoli"},
		Answer:   "Chand Baori",
		Hint:     "It stands in the village of Abhaneri.",
	},
	{
		ID: "lm-3-5", Level: 3, Name: "Basilica of Bom Jesus",
		ImageURL: "/images/landmarks/bom-jesus.jpg",
		Prompt:   "Which Goan church holds the remains of St. Francis Xavier?",
		Options:  []string{"Basilica of Bom Jesus", "Se Cathedral", "Church of St. Cajetan", "Our Lady of the Rosary"},
		Answer:   "Basilica of Bom Jesus",
		Hint:     "It is a UNESCO World Heritage Site in Old Goa.",
	},
	{
		ID: "lm-3-6", Level: 3, Name: "Shore Temple",
		ImageURL: "/images/landmarks/shore-temple.jpg",
		Prompt:   "Which Pallava-era temple faces the Bay of Bengal at Mahabalipuram?",
		Options:  []string{"Shore Temple", "Pancha Rathas", "Arjuna's Penance", "Varaha Cave Temple"},
		Answer:   "Shore Temple",
		Hint:     "It survived the 2004 tsunami largely intact.",
	},
	{
		ID: "lm-3-7", Level: 3, Name: "Nalanda",
		ImageURL: "/images/landmarks/nalanda.jpg",
		Prompt:   "Which ancient university's ruins lie in Bihar?",
		Options:  []string{"Nalanda", "Takshashila", "Vikramashila", "Odantapuri"},
		Answer:   "Nalanda",
		Hint:     "Xuanzang studied here in the seventh century.",
	},
	{
		ID: "lm-3-8", Level: 3, Name: "Hazara Rama Temple",
		ImageURL: "/images/landmarks/hazara-rama.jpg",
		Prompt:   "Which Hampi temple is covered in Ramayana relief panels?",
		Options:  []string{"Hazara Rama Temple", "Virupaksha Temple", "Vittala Temple", "Achyutaraya Temple"},
		Answer:   "Hazara Rama Temple",
		Hint:     "Its name means a thousand Ramas.",
	},
	{
		ID: "lm-3-9", Level: 3, Name: "Unakoti",
		ImageURL: "/images/landmarks/unakoti.jpg",
		Prompt:   "Which Tripura site features giant rock-cut faces of Shiva?",
		Options:  []string{"Unakoti", "Mahabalipuram", "Badami", "Masroor"},
		Answer:   "Unakoti",
		Hint:     "Its name means one less than a crore.",
	},
	{
		ID: "lm-3-10", Level: 3, Name: "Ramappa Temple",
		ImageURL: "/images/landmarks/ramappa.jpg",
		Prompt:   "Which Telangana temple is built with bricks light enough to float?",
		Options:  []string{"Ramappa Temple", "Thousand Pillar Temple", "Alampur Temples", "Bhadrachalam Temple"},
		Answer:   "Ramappa Temple",
		Hint:     "It is named after its sculptor, not a deity.",
	},
}
