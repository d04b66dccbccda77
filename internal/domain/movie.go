package domain

// NoneValue is stored for optional movie columns that the source sheet lacks.
const NoneValue = "없음"

// Movie is one row of the movie table.
type Movie struct {
	ID       int64
	Title    string
	EngTitle string
	Year     *int
	Country  string
	Type     string
	Status   string
	Company  string
}

// Director is a deduplicated director name.
type Director struct {
	ID   int64
	Name string
}

// Genre is a deduplicated genre name.
type Genre struct {
	ID   int64
	Name string
}

// MovieDirector links a movie to one of its directors.
type MovieDirector struct {
	MovieID    int64
	DirectorID int64
}

// MovieGenre links a movie to one of its genres.
type MovieGenre struct {
	MovieID int64
	GenreID int64
}
