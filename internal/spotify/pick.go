package spotify

import "strings"

const popularityLead = 20

// PickArtist chooses among search results for a billing. It returns the
// chosen artist and a short reason ("exact", "genre", "popularity"), or
// nil with "ambiguous" or "no-match" when no candidate can be trusted.
func PickArtist(name string, results []Artist, eventGenres []string) (*Artist, string) {
	want := NormalizeName(name)

	var exact []Artist
	for _, a := range results {
		if NormalizeName(a.Name) == want {
			exact = append(exact, a)
		}
	}

	switch len(exact) {
	case 0:
		return nil, "no-match"
	case 1:
		return &exact[0], "exact"
	}

	candidates := exact
	if len(eventGenres) > 0 {
		if matches := byGenreOverlap(exact, eventGenres); len(matches) == 1 {
			return &matches[0], "genre"
		} else if len(matches) > 1 {
			// several genre matches: drop the off-genre candidates
			// before asking popularity to break the tie
			candidates = matches
		}
	}

	if lead := byPopularityLead(candidates); lead != nil {
		return lead, "popularity"
	}
	return nil, "ambiguous"
}

// byGenreOverlap returns the candidates sharing a genre token with the
// event.
func byGenreOverlap(candidates []Artist, eventGenres []string) []Artist {
	tokens := make(map[string]bool)
	for _, g := range eventGenres {
		for _, tok := range strings.Fields(strings.ToLower(g)) {
			tokens[tok] = true
		}
	}

	var matches []Artist
	for i := range candidates {
		if overlaps(candidates[i].Genres, tokens) {
			matches = append(matches, candidates[i])
		}
	}
	return matches
}

func overlaps(genres []string, tokens map[string]bool) bool {
	for _, g := range genres {
		for _, tok := range strings.Fields(strings.ToLower(g)) {
			if tokens[tok] {
				return true
			}
		}
	}
	return false
}

// byPopularityLead returns the most popular candidate only if it leads
// the runner-up by a clear margin.
func byPopularityLead(candidates []Artist) *Artist {
	best, second := -1, -1
	bestIdx := 0
	for i, a := range candidates {
		if a.Popularity > best {
			second = best
			best = a.Popularity
			bestIdx = i
		} else if a.Popularity > second {
			second = a.Popularity
		}
	}
	if best-second >= popularityLead {
		return &candidates[bestIdx]
	}
	return nil
}
