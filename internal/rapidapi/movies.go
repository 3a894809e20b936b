package rapidapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rapidhub/rapidhub/pkg/apierror"
)

const resourceMovieSearch = "MovieSearch"

// MovieSearchResponse is the movie API payload, shared by /api/search and
// /api/getID.
type MovieSearchResponse struct {
	Movies   []MovieData    `json:"movies"`
	Metadata *MovieMetadata `json:"metadata"`
}

type MovieData struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	GenreIDs      []int   `json:"genre_ids"`
	Adult         bool    `json:"adult"`
}

type MovieMetadata struct {
	RequestID      string `json:"requestId"`
	Timestamp      string `json:"timestamp"`
	Source         string `json:"source"`
	Query          string `json:"query"`
	SanitizedQuery string `json:"sanitized_query"`
}

// SearchMovies queries the movie API with a natural-language query built
// from the title.
func (c *Client) SearchMovies(ctx context.Context, title string) (*MovieSearchResponse, error) {
	params := url.Values{}
	params.Set("q", "movies like "+title)

	cacheKey := "movies:search:" + params.Encode()
	body, err := c.getJSON(ctx, resourceMovieSearch, c.movieHost, "/api/search", params, cacheKey)
	if err != nil {
		return nil, err
	}

	var res MovieSearchResponse
	if err := decode(resourceMovieSearch, body, &res); err != nil {
		return nil, err
	}

	if len(res.Movies) == 0 {
		return nil, apierror.New(resourceMovieSearch, apierror.CodeNoResultsFound,
			fmt.Sprintf("no movies found for %q", title))
	}
	return &res, nil
}

// LookupMovie resolves a single movie by exact title via /api/getID and
// returns the first match.
func (c *Client) LookupMovie(ctx context.Context, title string) (*MovieData, error) {
	params := url.Values{}
	params.Set("title", title)

	cacheKey := "movies:lookup:" + params.Encode()
	body, err := c.getJSON(ctx, resourceMovieSearch, c.movieHost, "/api/getID", params, cacheKey)
	if err != nil {
		return nil, err
	}

	var res MovieSearchResponse
	if err := decode(resourceMovieSearch, body, &res); err != nil {
		return nil, err
	}

	if len(res.Movies) == 0 {
		return nil, apierror.New(resourceMovieSearch, apierror.CodeNotFound,
			fmt.Sprintf("movie %q not found", title))
	}
	return &res.Movies[0], nil
}
