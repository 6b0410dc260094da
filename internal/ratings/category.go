package ratings

// Category identifies a snap store category. A nil *Category in queries
// means "all categories". Wire ordinals are fixed and must never be
// renumbered.
type Category int32

const (
	CategoryArtAndDesign Category = iota
	CategoryBookAndReference
	CategoryDevelopment
	CategoryDevicesAndIot
	CategoryEducation
	CategoryEntertainment
	CategoryFinance
	CategoryGames
	CategoryHealthAndFitness
	CategoryMusicAndAudio
	CategoryNewsAndWeather
	CategoryPersonalisation
	CategoryPhotoAndVideo
	CategoryProductivity
	CategoryScience
	CategorySecurity
	CategoryServerAndCloud
	CategorySocial
	CategoryUtilities
)

var categoryNames = map[Category]string{
	CategoryArtAndDesign:     "art-and-design",
	CategoryBookAndReference: "book-and-reference",
	CategoryDevelopment:      "development",
	CategoryDevicesAndIot:    "devices-and-iot",
	CategoryEducation:        "education",
	CategoryEntertainment:    "entertainment",
	CategoryFinance:          "finance",
	CategoryGames:            "games",
	CategoryHealthAndFitness: "health-and-fitness",
	CategoryMusicAndAudio:    "music-and-audio",
	CategoryNewsAndWeather:   "news-and-weather",
	CategoryPersonalisation:  "personalisation",
	CategoryPhotoAndVideo:    "photo-and-video",
	CategoryProductivity:     "productivity",
	CategoryScience:          "science",
	CategorySecurity:         "security",
	CategoryServerAndCloud:   "server-and-cloud",
	CategorySocial:           "social",
	CategoryUtilities:        "utilities",
}

// CategoryFromRepr decodes a wire ordinal into a Category. Unknown
// ordinals are rejected; unlike timeframes there is no default category.
func CategoryFromRepr(v int32) (Category, bool) {
	c := Category(v)
	_, ok := categoryNames[c]
	return c, ok
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}
