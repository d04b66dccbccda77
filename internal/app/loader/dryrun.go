package loader

import "github.com/heartmarshall/movieloader/internal/sheet"

// Preview computes the summary a load of table would report, without a
// database. Movies are titled rows; directors and genres are distinct
// non-blank names.
func Preview(table *sheet.Table) Summary {
	directors := make(map[string]struct{})
	genres := make(map[string]struct{})

	var s Summary
	for _, row := range table.Rows() {
		if name, ok := cell(row, ColDirector); ok {
			directors[name] = struct{}{}
		}
		if name, ok := cell(row, ColGenre); ok {
			genres[name] = struct{}{}
		}
		if _, ok := cell(row, ColTitle); ok {
			s.Movies++
		}
	}
	s.Directors = len(directors)
	s.Genres = len(genres)
	return s
}
