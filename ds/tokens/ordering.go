package tokens

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/utils"
)

// keyedToken pairs a token with its integer ordering key.
type keyedToken struct {
	text string
	key  int64
}

// Parse returns the integer ordering key of the token.
func Parse(token string) (int64, error) {
	key, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrNonNumericToken, "%q", token)
	}

	return key, nil
}

// Sorted returns a copy of the tokens ordered by their integer value. The order is stable, so equal keys keep their
// relative order. The input is never modified.
func Sorted(tokens []string, reverse bool) ([]string, error) {
	keyed, err := sortedKeys(tokens, reverse)
	if err != nil {
		return nil, err
	}

	sorted := make([]string, len(keyed))
	for i, entry := range keyed {
		sorted[i] = entry.text
	}

	return sorted, nil
}

// IndexInSorted returns the 0-based index of the first token that equals target in the ascending sorted copy of
// tokens. A target that is not part of tokens (including a non-numeric one) is reported as not found.
func IndexInSorted(tokens []string, target string) (index int, found bool, err error) {
	keyed, err := sortedKeys(tokens, false)
	if err != nil {
		return 0, false, err
	}

	key, err := Parse(target)
	if err != nil {
		return 0, false, nil
	}

	index = sort.Search(len(keyed), func(i int) bool {
		return keyed[i].key >= key
	})

	for ; index < len(keyed) && keyed[index].key == key; index++ {
		if keyed[index].text == target {
			return index, true, nil
		}
	}

	return 0, false, nil
}

func sortedKeys(tokens []string, reverse bool) ([]keyedToken, error) {
	keyed := make([]keyedToken, len(tokens))
	for i, token := range tokens {
		key, err := Parse(token)
		if err != nil {
			return nil, err
		}

		keyed[i] = keyedToken{text: token, key: key}
	}

	slices.SortStableFunc(keyed, func(a, b keyedToken) int {
		if reverse {
			return utils.Int64Comparator(b.key, a.key)
		}

		return utils.Int64Comparator(a.key, b.key)
	})

	return keyed, nil
}
