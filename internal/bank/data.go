package bank

import "github.com/quizhero/core/internal/models"

func en(prompt string, options []string, answer string, category models.Category, difficulty models.Difficulty) models.StaticQuestion {
	return models.StaticQuestion{
		Prompt:     map[models.Locale]string{models.LocaleEnglish: prompt},
		Options:    map[models.Locale][]string{models.LocaleEnglish: options},
		Answer:     map[models.Locale]string{models.LocaleEnglish: answer},
		Category:   category,
		Difficulty: difficulty,
	}
}

var staticQuestions = []models.StaticQuestion{
	// GK
	{
		Prompt: map[models.Locale]string{
			models.LocaleEnglish: "What is the capital of India?",
			models.LocaleHindi:   "भारत की राजधानी क्या है?",
			models.LocaleTelugu:  "భారతదేశ రాజధాని ఏది?",
		},
		Options: map[models.Locale][]string{
			models.LocaleEnglish: {"New Delhi", "Mumbai", "Kolkata", "Chennai"},
			models.LocaleHindi:   {"नई दिल्ली", "मुंबई", "कोलकाता", "चेन्नई"},
			models.LocaleTelugu:  {"న్యూఢిల్లీ", "ముంబై", "కోల్‌కతా", "చెన్నై"},
		},
		Answer: map[models.Locale]string{
			models.LocaleEnglish: "New Delhi",
			models.LocaleHindi:   "नई दिल्ली",
			models.LocaleTelugu:  "న్యూఢిల్లీ",
		},
		Category:   models.CategoryGK,
		Difficulty: models.DifficultyEasy,
	},
	{
		Prompt: map[models.Locale]string{
			models.LocaleEnglish: "Which is the national animal of India?",
			models.LocaleHindi:   "भारत का राष्ट्रीय पशु कौन सा है?",
		},
		Options: map[models.Locale][]string{
			models.LocaleEnglish: {"Bengal Tiger", "Asiatic Lion", "Indian Elephant", "Leopard"},
			models.LocaleHindi:   {"बंगाल टाइगर", "एशियाई शेर", "भारतीय हाथी", "तेंदुआ"},
		},
		Answer: map[models.Locale]string{
			models.LocaleEnglish: "Bengal Tiger",
			models.LocaleHindi:   "बंगाल टाइगर",
		},
		Category:   models.CategoryGK,
		Difficulty: models.DifficultyEasy,
	},
	en("How many states does India have?",
		[]string{"28", "29", "27", "30"}, "28",
		models.CategoryGK, models.DifficultyEasy),
	en("Which currency is used in India?",
		[]string{"Rupee", "Taka", "Dinar", "Riyal"}, "Rupee",
		models.CategoryGK, models.DifficultyEasy),
	en("Who is known as the Father of the Nation in India?",
		[]string{"Mahatma Gandhi", "Jawaharlal Nehru", "Sardar Patel", "B. R. Ambedkar"}, "Mahatma Gandhi",
		models.CategoryGK, models.DifficultyEasy),
	en("Which Indian city is known as the Pink City?",
		[]string{"Jaipur", "Jodhpur", "Udaipur", "Bikaner"}, "Jaipur",
		models.CategoryGK, models.DifficultyMedium),
	en("The national emblem of India is adapted from which pillar?",
		[]string{"Sarnath Lion Capital", "Allahabad Pillar", "Delhi Iron Pillar", "Vaishali Pillar"}, "Sarnath Lion Capital",
		models.CategoryGK, models.DifficultyMedium),
	en("Which article of the Indian Constitution abolishes untouchability?",
		[]string{"Article 17", "Article 14", "Article 21", "Article 19"}, "Article 17",
		models.CategoryGK, models.DifficultyHard),

	// Sports
	en("How many players are on a cricket team?",
		[]string{"11", "10", "12", "9"}, "11",
		models.CategorySports, models.DifficultyEasy),
	en("Which country hosted the 2011 Cricket World Cup final?",
		[]string{"India", "Sri Lanka", "Bangladesh", "Australia"}, "India",
		models.CategorySports, models.DifficultyMedium),
	en("Who was the first Indian to win an individual Olympic gold medal?",
		[]string{"Abhinav Bindra", "Neeraj Chopra", "Rajyavardhan Rathore", "Milkha Singh"}, "Abhinav Bindra",
		models.CategorySports, models.DifficultyMedium),
	en("In which year did Kapil Dev's team win the Cricket World Cup?",
		[]string{"1983", "1987", "1979", "1992"}, "1983",
		models.CategorySports, models.DifficultyHard),

	// Bollywood
	en("Who is known as the Shahenshah of Bollywood?",
		[]string{"Amitabh Bachchan", "Shah Rukh Khan", "Dilip Kumar", "Rajesh Khanna"}, "Amitabh Bachchan",
		models.CategoryBollywood, models.DifficultyEasy),
	en("Which 2001 film starring Aamir Khan was nominated for an Academy Award?",
		[]string{"Lagaan", "Dil Chahta Hai", "Rang De Basanti", "Taare Zameen Par"}, "Lagaan",
		models.CategoryBollywood, models.DifficultyMedium),
	en("Who composed the music for the film Slumdog Millionaire?",
		[]string{"A. R. Rahman", "Shankar Mahadevan", "Ilaiyaraaja", "Pritam"}, "A. R. Rahman",
		models.CategoryBollywood, models.DifficultyMedium),

	// Science
	en("What is the chemical symbol for gold?",
		[]string{"Au", "Ag", "Gd", "Go"}, "Au",
		models.CategoryScience, models.DifficultyEasy),
	en("Which planet is known as the Red Planet?",
		[]string{"Mars", "Venus", "Jupiter", "Mercury"}, "Mars",
		models.CategoryScience, models.DifficultyEasy),
	en("What gas do plants absorb during photosynthesis?",
		[]string{"Carbon dioxide", "Oxygen", "Nitrogen", "Hydrogen"}, "Carbon dioxide",
		models.CategoryScience, models.DifficultyEasy),
	en("Which Indian physicist won the Nobel Prize for work on light scattering?",
		[]string{"C. V. Raman", "Homi Bhabha", "S. N. Bose", "Vikram Sarabhai"}, "C. V. Raman",
		models.CategoryScience, models.DifficultyMedium),
	en("What is the approximate speed of light in a vacuum?",
		[]string{"300,000 km/s", "150,000 km/s", "1,000,000 km/s", "30,000 km/s"}, "300,000 km/s",
		models.CategoryScience, models.DifficultyMedium),

	// Technology
	en("What does CPU stand for?",
		[]string{"Central Processing Unit", "Computer Personal Unit", "Central Program Utility", "Core Processing Unit"}, "Central Processing Unit",
		models.CategoryTechnology, models.DifficultyEasy),
	en("Which Indian space mission reached Mars orbit in 2014?",
		[]string{"Mangalyaan", "Chandrayaan-1", "Gaganyaan", "Aditya-L1"}, "Mangalyaan",
		models.CategoryTechnology, models.DifficultyMedium),
	en("Who co-founded Infosys?",
		[]string{"N. R. Narayana Murthy", "Azim Premji", "Ratan Tata", "Sundar Pichai"}, "N. R. Narayana Murthy",
		models.CategoryTechnology, models.DifficultyMedium),

	// History
	en("Who built the Taj Mahal?",
		[]string{"Shah Jahan", "Akbar", "Aurangzeb", "Humayun"}, "Shah Jahan",
		models.CategoryHistory, models.DifficultyEasy),
	en("In which year did India gain independence?",
		[]string{"1947", "1950", "1942", "1945"}, "1947",
		models.CategoryHistory, models.DifficultyEasy),
	en("The Battle of Plassey was fought in which year?",
		[]string{"1757", "1764", "1857", "1707"}, "1757",
		models.CategoryHistory, models.DifficultyHard),
	en("Who founded the Maurya Empire?",
		[]string{"Chandragupta Maurya", "Ashoka", "Bindusara", "Samudragupta"}, "Chandragupta Maurya",
		models.CategoryHistory, models.DifficultyMedium),

	// Geography
	en("Which is the longest river in India?",
		[]string{"Ganga", "Godavari", "Yamuna", "Brahmaputra"}, "Ganga",
		models.CategoryGeography, models.DifficultyEasy),
	en("Which Indian state has the longest coastline?",
		[]string{"Gujarat", "Tamil Nadu", "Andhra Pradesh", "Maharashtra"}, "Gujarat",
		models.CategoryGeography, models.DifficultyMedium),
	en("Kanchenjunga lies on the border of India and which country?",
		[]string{"Nepal", "Bhutan", "China", "Myanmar"}, "Nepal",
		models.CategoryGeography, models.DifficultyHard),

	// Current Affairs
	en("Which payment system powers most instant bank transfers in India?",
		[]string{"UPI", "SWIFT", "NEFT", "RTGS"}, "UPI",
		models.CategoryCurrentAffairs, models.DifficultyEasy),
	en("What does GST stand for?",
		[]string{"Goods and Services Tax", "General Sales Tax", "Gross State Turnover", "Government Service Tariff"}, "Goods and Services Tax",
		models.CategoryCurrentAffairs, models.DifficultyMedium),
}
