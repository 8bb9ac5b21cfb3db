package catalog

import "github.com/Uniqwrites1/bible-reader/internal/models"

var defaultCatalog *Catalog

func init() {
	var err error
	defaultCatalog, err = New(defaultSections)
	if err != nil {
		// The built-in data is validated at process start; a failure here
		// is a programming error, not a runtime condition.
		panic("catalog: invalid built-in data: " + err.Error())
	}
}

// Default returns the shared built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

var defaultSections = []Section{
	{
		ID:   models.SectionHistory,
		Name: "History",
		Books: []Book{
			{Name: "Genesis", Chapters: 50},
			{Name: "Exodus", Chapters: 40},
			{Name: "Leviticus", Chapters: 27},
			{Name: "Numbers", Chapters: 36},
			{Name: "Deuteronomy", Chapters: 34},
			{Name: "Joshua", Chapters: 24},
			{Name: "Judges", Chapters: 21},
			{Name: "Ruth", Chapters: 4},
			{Name: "1 Samuel", Chapters: 31},
			{Name: "2 Samuel", Chapters: 24},
			{Name: "1 Kings", Chapters: 22},
			{Name: "2 Kings", Chapters: 25},
			{Name: "1 Chronicles", Chapters: 29},
			{Name: "2 Chronicles", Chapters: 36},
			{Name: "Ezra", Chapters: 10},
			{Name: "Nehemiah", Chapters: 13},
			{Name: "Esther", Chapters: 10},
			{Name: "Job", Chapters: 42},
		},
	},
	{
		ID:   models.SectionPsalms,
		Name: "Psalms",
		Books: []Book{
			{Name: "Psalms", Chapters: 150},
		},
	},
	{
		ID:   models.SectionWisdom,
		Name: "Wisdom",
		Books: []Book{
			{Name: "Proverbs", Chapters: 31},
			{Name: "Ecclesiastes", Chapters: 12},
			{Name: "Song of Songs", Chapters: 8},
		},
	},
	{
		ID:   models.SectionProphets,
		Name: "Prophets",
		Books: []Book{
			{Name: "Isaiah", Chapters: 66},
			{Name: "Jeremiah", Chapters: 52},
			{Name: "Lamentations", Chapters: 5},
			{Name: "Ezekiel", Chapters: 48},
			{Name: "Daniel", Chapters: 12},
			{Name: "Hosea", Chapters: 14},
			{Name: "Joel", Chapters: 3},
			{Name: "Amos", Chapters: 9},
			{Name: "Obadiah", Chapters: 1},
			{Name: "Jonah", Chapters: 4},
			{Name: "Micah", Chapters: 7},
			{Name: "Nahum", Chapters: 3},
			{Name: "Habakkuk", Chapters: 3},
			{Name: "Zephaniah", Chapters: 3},
			{Name: "Haggai", Chapters: 2},
			{Name: "Zechariah", Chapters: 14},
			{Name: "Malachi", Chapters: 4},
		},
	},
	{
		ID:   models.SectionNewTestament,
		Name: "New Testament",
		Books: []Book{
			{Name: "Matthew", Chapters: 28},
			{Name: "Mark", Chapters: 16},
			{Name: "Luke", Chapters: 24},
			{Name: "John", Chapters: 21},
			{Name: "Acts", Chapters: 28},
			{Name: "Romans", Chapters: 16},
			{Name: "1 Corinthians", Chapters: 16},
			{Name: "2 Corinthians", Chapters: 13},
			{Name: "Galatians", Chapters: 6},
			{Name: "Ephesians", Chapters: 6},
			{Name: "Philippians", Chapters: 4},
			{Name: "Colossians", Chapters: 4},
			{Name: "1 Thessalonians", Chapters: 5},
			{Name: "2 Thessalonians", Chapters: 3},
			{Name: "1 Timothy", Chapters: 6},
			{Name: "2 Timothy", Chapters: 4},
			{Name: "Titus", Chapters: 3},
			{Name: "Philemon", Chapters: 1},
			{Name: "Hebrews", Chapters: 13},
			{Name: "James", Chapters: 5},
			{Name: "1 Peter", Chapters: 5},
			{Name: "2 Peter", Chapters: 3},
			{Name: "1 John", Chapters: 5},
			{Name: "2 John", Chapters: 1},
			{Name: "3 John", Chapters: 1},
			{Name: "Jude", Chapters: 1},
		},
	},
	{
		ID:   models.SectionRevelation,
		Name: "Revelation",
		Books: []Book{
			{Name: "Revelation", Chapters: 22},
		},
	},
}
