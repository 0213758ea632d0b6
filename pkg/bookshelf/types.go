package bookshelf

// Book is a catalog entry as served by the books endpoint.
type Book struct {
	PK            int      `json:"pk"                       yaml:"pk"`
	Title         string   `json:"title"                    yaml:"title"`
	Description   string   `json:"description"              yaml:"description"`
	ISBN          string   `json:"isbn,omitempty"           yaml:"isbn,omitempty"`
	Publisher     int      `json:"publisher"                yaml:"publisher"`
	Authors       []int    `json:"authors"                  yaml:"authors"`
	AverageRating *float64 `json:"average_rating,omitempty" yaml:"average_rating,omitempty"`
}

// Publisher is a catalog publisher as served by the publishers endpoint.
type Publisher struct {
	PK   int    `json:"pk"   yaml:"pk"`
	Name string `json:"name" yaml:"name"`
}
