package locale

// Builtin returns the compiled-in datasets for en_US and de_DE. The SQL
// seed migration carries the same rows; the two must stay in sync so a
// builtin-backed process generates exactly what a Postgres-backed one
// does for the same seed.
func Builtin() []*Bundle {
	return []*Bundle{builtinEnUS(), builtinDeDE()}
}

func entry(id int, text string, freq int) Entry {
	return Entry{ID: id, Text: text, Frequency: freq}
}

func gendered(id int, text, gender string, freq int) Entry {
	return Entry{ID: id, Text: text, Gender: gender, Frequency: freq}
}

func city(id int, name, region, pattern string, freq int) City {
	return City{ID: id, Name: name, Region: region, PostalPattern: pattern, Frequency: freq}
}

func builtinEnUS() *Bundle {
	return &Bundle{
		Code: "en_US",
		Name: "English (United States)",
		FirstNames: []Entry{
			gendered(1, "James", GenderMale, 95),
			gendered(2, "Michael", GenderMale, 92),
			gendered(3, "Robert", GenderMale, 90),
			gendered(4, "John", GenderMale, 88),
			gendered(5, "David", GenderMale, 86),
			gendered(6, "William", GenderMale, 82),
			gendered(7, "Richard", GenderMale, 75),
			gendered(8, "Joseph", GenderMale, 72),
			gendered(9, "Thomas", GenderMale, 70),
			gendered(10, "Christopher", GenderMale, 68),
			gendered(11, "Charles", GenderMale, 62),
			gendered(12, "Daniel", GenderMale, 61),
			gendered(13, "Matthew", GenderMale, 59),
			gendered(14, "Anthony", GenderMale, 55),
			gendered(15, "Mark", GenderMale, 54),
			gendered(16, "Steven", GenderMale, 48),
			gendered(17, "Andrew", GenderMale, 46),
			gendered(18, "Paul", GenderMale, 42),
			gendered(19, "Joshua", GenderMale, 41),
			gendered(20, "Kevin", GenderMale, 38),
			gendered(21, "Mary", GenderFemale, 90),
			gendered(22, "Patricia", GenderFemale, 84),
			gendered(23, "Jennifer", GenderFemale, 83),
			gendered(24, "Linda", GenderFemale, 78),
			gendered(25, "Elizabeth", GenderFemale, 77),
			gendered(26, "Barbara", GenderFemale, 71),
			gendered(27, "Susan", GenderFemale, 68),
			gendered(28, "Jessica", GenderFemale, 66),
			gendered(29, "Sarah", GenderFemale, 64),
			gendered(30, "Karen", GenderFemale, 60),
			gendered(31, "Lisa", GenderFemale, 57),
			gendered(32, "Nancy", GenderFemale, 54),
			gendered(33, "Sandra", GenderFemale, 50),
			gendered(34, "Ashley", GenderFemale, 49),
			gendered(35, "Emily", GenderFemale, 47),
			gendered(36, "Donna", GenderFemale, 44),
			gendered(37, "Michelle", GenderFemale, 42),
			gendered(38, "Carol", GenderFemale, 40),
			gendered(39, "Amanda", GenderFemale, 38),
			gendered(40, "Melissa", GenderFemale, 36),
		},
		LastNames: []Entry{
			entry(1, "Smith", 99),
			entry(2, "Johnson", 93),
			entry(3, "Williams", 88),
			entry(4, "Brown", 85),
			entry(5, "Jones", 83),
			entry(6, "Garcia", 80),
			entry(7, "Miller", 78),
			entry(8, "Davis", 75),
			entry(9, "Rodriguez", 72),
			entry(10, "Martinez", 70),
			entry(11, "Hernandez", 66),
			entry(12, "Lopez", 64),
			entry(13, "Gonzalez", 61),
			entry(14, "Wilson", 60),
			entry(15, "Anderson", 58),
			entry(16, "Thomas", 55),
			entry(17, "Taylor", 54),
			entry(18, "Moore", 52),
			entry(19, "Jackson", 50),
			entry(20, "Martin", 48),
			entry(21, "Lee", 46),
			entry(22, "Perez", 44),
			entry(23, "Thompson", 43),
			entry(24, "White", 41),
		},
		Titles: []Entry{
			gendered(1, "Mr.", GenderMale, 80),
			gendered(2, "Mrs.", GenderFemale, 45),
			gendered(3, "Ms.", GenderFemale, 40),
			gendered(4, "Dr.", GenderUnisex, 12),
			gendered(5, "Prof.", GenderUnisex, 3),
		},
		EyeColors: []Entry{
			entry(1, "Brown", 55),
			entry(2, "Blue", 27),
			entry(3, "Hazel", 8),
			entry(4, "Green", 6),
			entry(5, "Gray", 3),
			entry(6, "Amber", 1),
		},
		StreetNames: []Entry{
			entry(1, "Main", 90),
			entry(2, "Oak", 78),
			entry(3, "Maple", 74),
			entry(4, "Cedar", 70),
			entry(5, "Park", 68),
			entry(6, "Pine", 66),
			entry(7, "Washington", 62),
			entry(8, "Elm", 60),
			entry(9, "Lake", 56),
			entry(10, "Hill", 52),
			entry(11, "Walnut", 48),
			entry(12, "Sunset", 44),
			entry(13, "Lincoln", 40),
			entry(14, "Jackson", 36),
			entry(15, "Church", 34),
			entry(16, "River", 30),
		},
		StreetTypes: []Entry{
			entry(1, "St", 90),
			entry(2, "Ave", 75),
			entry(3, "Rd", 65),
			entry(4, "Dr", 55),
			entry(5, "Ln", 40),
			entry(6, "Blvd", 30),
			entry(7, "Ct", 22),
			entry(8, "Way", 18),
		},
		Cities: []City{
			city(1, "New York", "NY", "#####", 84),
			city(2, "Los Angeles", "CA", "#####", 74),
			city(3, "Chicago", "IL", "#####", 64),
			city(4, "Houston", "TX", "#####", 58),
			city(5, "Phoenix", "AZ", "#####", 50),
			city(6, "Philadelphia", "PA", "#####", 46),
			city(7, "San Antonio", "TX", "#####", 40),
			city(8, "San Diego", "CA", "#####", 38),
			city(9, "Dallas", "TX", "#####", 36),
			city(10, "Austin", "TX", "#####", 32),
			city(11, "Seattle", "WA", "#####", 28),
			city(12, "Denver", "CO", "#####", 26),
		},
		PhoneFormats: []Entry{
			entry(1, "(###) ###-####", 70),
			entry(2, "###-###-####", 25),
			entry(3, "###.###.####", 5),
		},
		EmailDomains: []Entry{
			entry(1, "gmail.com", 45),
			entry(2, "yahoo.com", 18),
			entry(3, "hotmail.com", 12),
			entry(4, "outlook.com", 10),
			entry(5, "aol.com", 6),
			entry(6, "icloud.com", 5),
			entry(7, "example.com", 4),
		},
	}
}

func builtinDeDE() *Bundle {
	return &Bundle{
		Code: "de_DE",
		Name: "German (Germany)",
		FirstNames: []Entry{
			gendered(1, "Hans", GenderMale, 80),
			gendered(2, "Peter", GenderMale, 76),
			gendered(3, "Michael", GenderMale, 74),
			gendered(4, "Thomas", GenderMale, 72),
			gendered(5, "Andreas", GenderMale, 68),
			gendered(6, "Wolfgang", GenderMale, 62),
			gendered(7, "Klaus", GenderMale, 60),
			gendered(8, "Jürgen", GenderMale, 58),
			gendered(9, "Stefan", GenderMale, 54),
			gendered(10, "Christian", GenderMale, 50),
			gendered(11, "Uwe", GenderMale, 44),
			gendered(12, "Frank", GenderMale, 42),
			gendered(13, "Markus", GenderMale, 40),
			gendered(14, "Martin", GenderMale, 38),
			gendered(15, "Alexander", GenderMale, 34),
			gendered(16, "Matthias", GenderMale, 32),
			gendered(17, "Maria", GenderFemale, 78),
			gendered(18, "Ursula", GenderFemale, 66),
			gendered(19, "Monika", GenderFemale, 64),
			gendered(20, "Petra", GenderFemale, 62),
			gendered(21, "Elisabeth", GenderFemale, 60),
			gendered(22, "Sabine", GenderFemale, 58),
			gendered(23, "Renate", GenderFemale, 54),
			gendered(24, "Helga", GenderFemale, 50),
			gendered(25, "Karin", GenderFemale, 48),
			gendered(26, "Brigitte", GenderFemale, 44),
			gendered(27, "Ingrid", GenderFemale, 40),
			gendered(28, "Claudia", GenderFemale, 38),
			gendered(29, "Andrea", GenderFemale, 36),
			gendered(30, "Susanne", GenderFemale, 34),
			gendered(31, "Julia", GenderFemale, 30),
			gendered(32, "Anna", GenderFemale, 28),
		},
		LastNames: []Entry{
			entry(1, "Müller", 95),
			entry(2, "Schmidt", 90),
			entry(3, "Schneider", 78),
			entry(4, "Fischer", 74),
			entry(5, "Weber", 70),
			entry(6, "Meyer", 68),
			entry(7, "Wagner", 64),
			entry(8, "Becker", 60),
			entry(9, "Schulz", 58),
			entry(10, "Hoffmann", 56),
			entry(11, "Schäfer", 50),
			entry(12, "Koch", 48),
			entry(13, "Bauer", 46),
			entry(14, "Richter", 44),
			entry(15, "Klein", 42),
			entry(16, "Wolf", 40),
			entry(17, "Schröder", 38),
			entry(18, "Neumann", 36),
			entry(19, "Schwarz", 34),
			entry(20, "Zimmermann", 30),
		},
		Titles: []Entry{
			gendered(1, "Herr", GenderMale, 75),
			gendered(2, "Frau", GenderFemale, 75),
			gendered(3, "Dr.", GenderUnisex, 15),
			gendered(4, "Prof.", GenderUnisex, 4),
		},
		EyeColors: []Entry{
			entry(1, "Braun", 45),
			entry(2, "Blau", 35),
			entry(3, "Grün", 10),
			entry(4, "Grau", 7),
			entry(5, "Bernstein", 3),
		},
		StreetNames: []Entry{
			entry(1, "Haupt", 85),
			entry(2, "Schul", 70),
			entry(3, "Garten", 66),
			entry(4, "Bahnhof", 62),
			entry(5, "Dorf", 58),
			entry(6, "Berg", 54),
			entry(7, "Kirch", 50),
			entry(8, "Wald", 46),
			entry(9, "Birken", 36),
			entry(10, "Linden", 34),
			entry(11, "Goethe", 30),
			entry(12, "Schiller", 28),
			entry(13, "Mozart", 24),
		},
		StreetTypes: []Entry{
			entry(1, "straße", 80),
			entry(2, "weg", 40),
			entry(3, "allee", 20),
			entry(4, "platz", 14),
			entry(5, "gasse", 10),
			entry(6, "ring", 8),
		},
		Cities: []City{
			city(1, "Berlin", "Berlin", "#####", 80),
			city(2, "Hamburg", "Hamburg", "#####", 64),
			city(3, "München", "Bayern", "#####", 60),
			city(4, "Köln", "Nordrhein-Westfalen", "#####", 54),
			city(5, "Frankfurt", "Hessen", "#####", 50),
			city(6, "Stuttgart", "Baden-Württemberg", "#####", 44),
			city(7, "Düsseldorf", "Nordrhein-Westfalen", "#####", 40),
			city(8, "Leipzig", "Sachsen", "#####", 36),
			city(9, "Dortmund", "Nordrhein-Westfalen", "#####", 32),
			city(10, "Dresden", "Sachsen", "#####", 30),
		},
		PhoneFormats: []Entry{
			entry(1, "0#### ######", 55),
			entry(2, "0## ########", 30),
			entry(3, "(0##) #######", 15),
		},
		EmailDomains: []Entry{
			entry(1, "gmail.com", 25),
			entry(2, "web.de", 22),
			entry(3, "gmx.de", 20),
			entry(4, "t-online.de", 15),
			entry(5, "yahoo.de", 10),
			entry(6, "posteo.de", 8),
		},
	}
}
