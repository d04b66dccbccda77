// Command movieloader loads a movie spreadsheet into PostgreSQL.
//
// Every run drops and recreates the movie, director, genre, movie_director
// and movie_genre tables. Configuration comes from config.yaml (or
// CONFIG_PATH), a .env file and the environment; flags override both.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"os"

	"github.com/heartmarshall/movieloader/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
