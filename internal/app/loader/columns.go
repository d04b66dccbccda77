package loader

// Column labels in the source sheet header.
const (
	ColTitle    = "영화명"
	ColEngTitle = "영화명(영문)"
	ColYear     = "제작연도"
	ColCountry  = "제작국가"
	ColType     = "유형"
	ColStatus   = "제작상태"
	ColCompany  = "제작사"
	ColDirector = "감독"
	ColGenre    = "장르"
)
