package id3v1

import (
	"fmt"
	"strconv"
	"strings"
)

// genres is the fixed ID3v1 genre table, indexed by genre byte, with the
// canonical Winamp spellings.
var genres = [...]string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk", "Grunge",
	"Hip-Hop", "Jazz", "Metal", "New Age", "Oldies", "Other", "Pop", "R&B",
	"Rap", "Reggae", "Rock", "Techno", "Industrial", "Alternative", "Ska",
	"Death Metal", "Pranks", "Soundtrack", "Euro-Techno", "Ambient",
	"Trip-Hop", "Vocal", "Jazz+Funk", "Fusion", "Trance", "Classical",
	"Instrumental", "Acid", "House", "Game", "Sound Clip", "Gospel", "Noise",
	"Alternative Rock", "Bass", "Soul", "Punk", "Space", "Meditative",
	"Instrumental Pop", "Instrumental Rock", "Ethnic", "Gothic", "Darkwave",
	"Techno-Industrial", "Electronic", "Pop-Folk", "Eurodance", "Dream",
	"Southern Rock", "Comedy", "Cult", "Gangsta", "Top 40", "Christian Rap",
	"Pop/Funk", "Jungle", "Native US", "Cabaret", "New Wave", "Psychedelic",
	"Rave", "Showtunes", "Trailer", "Lo-Fi", "Tribal", "Acid Punk",
	"Acid Jazz", "Polka", "Retro", "Musical", "Rock & Roll", "Hard Rock",
	"Folk",
}

// GenreCount is the number of entries in the genre table.
const GenreCount = len(genres)

// GenreNone is the conventional "no genre" byte.
const GenreNone = 255

// GenreName returns the table name for code. Codes outside the table
// report false.
func GenreName(code int) (string, bool) {
	if code < 0 || code >= len(genres) {
		return "", false
	}
	return genres[code], true
}

// GenreCode returns the table code for name, ignoring case.
func GenreCode(name string) (int, bool) {
	for i, g := range genres {
		if strings.EqualFold(g, name) {
			return i, true
		}
	}
	return 0, false
}

// renderGenre formats a genre byte as "(code)name". Codes outside the
// table take the name of entry 0.
func renderGenre(code byte) string {
	name, ok := GenreName(int(code))
	if !ok {
		name = genres[0]
	}
	return fmt.Sprintf("(%d)%s", code, name)
}

// parseGenre resolves a genre string to its byte. It accepts the
// "(code)name" form produced when reading, a bare table name, or a bare
// number.
func parseGenre(s string) (byte, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GenreNone, true
	}
	if rest, ok := strings.CutPrefix(s, "("); ok {
		if num, _, ok := strings.Cut(rest, ")"); ok {
			if n, err := strconv.Atoi(num); err == nil && n >= 0 && n <= 255 {
				return byte(n), true
			}
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return byte(n), true
	}
	if code, ok := GenreCode(s); ok {
		return byte(code), true
	}
	return 0, false
}
