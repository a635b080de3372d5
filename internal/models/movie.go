package models

// Movie is the subset of catalog fields the service reads from TMDB list
// responses. Everything else in the API payload is ignored.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	GenreIDs     []int   `json:"genre_ids"`
	PosterURL    string  `json:"poster_url,omitempty"`
	BackdropURL  string  `json:"backdrop_url,omitempty"`
}

// Genre is a movie genre as returned on detail responses.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Keyword is a catalog keyword attached to a movie.
type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is an actor credit.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// CrewMember is a production credit.
type CrewMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path"`
}

// Credits holds the cast and crew for a movie.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Video is a trailer or clip attached to a movie.
type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Company is a production company.
type Company struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Country is a production country.
type Country struct {
	ISO  string `json:"iso_3166_1"`
	Name string `json:"name"`
}

// MovieDetail is the full movie record consumed by the mood meter, trivia
// generator and export flows.
type MovieDetail struct {
	ID                  int       `json:"id"`
	Title               string    `json:"title"`
	Tagline             string    `json:"tagline"`
	Overview            string    `json:"overview"`
	ReleaseDate         string    `json:"release_date"`
	Runtime             int       `json:"runtime"`
	Budget              int64     `json:"budget"`
	Revenue             int64     `json:"revenue"`
	Popularity          float64   `json:"popularity"`
	VoteAverage         float64   `json:"vote_average"`
	PosterPath          string    `json:"poster_path"`
	BackdropPath        string    `json:"backdrop_path"`
	Genres              []Genre   `json:"genres"`
	Keywords            []Keyword `json:"keywords"`
	Videos              []Video   `json:"videos"`
	Credits             *Credits  `json:"credits,omitempty"`
	ProductionCompanies []Company `json:"production_companies"`
	ProductionCountries []Country `json:"production_countries"`
	PosterURL           string    `json:"poster_url,omitempty"`
	BackdropURL         string    `json:"backdrop_url,omitempty"`
}

// ReleaseYear returns the four-digit release year, or 0 when unknown.
func (m *MovieDetail) ReleaseYear() int {
	return yearOf(m.ReleaseDate)
}

// ReleaseYear returns the four-digit release year, or 0 when unknown.
func (m *Movie) ReleaseYear() int {
	return yearOf(m.ReleaseDate)
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year := 0
	for _, c := range date[:4] {
		if c < '0' || c > '9' {
			return 0
		}
		year = year*10 + int(c-'0')
	}
	return year
}

const (
	TMDBImageBaseW300     = "https://image.tmdb.org/t/p/w300"
	TMDBImageBaseW500     = "https://image.tmdb.org/t/p/w500"
	TMDBImageBaseOriginal = "https://image.tmdb.org/t/p/original"
)
