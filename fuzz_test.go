//go:build go1.18

package yamldoc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zuhlke/go-yamldoc"
)

func FuzzEncode(f *testing.F) {
	f.Add("name", "Prepare Xcode", "")
	f.Add("run", "echo one\necho two\n", "Run both")
	f.Add("", "", "")
	f.Add("- key", "a: b", "multi\nline")
	f.Add("key", "  padded ", "# hash")

	f.Fuzz(func(t *testing.T, key, value, comment string) {
		build := func() *yamldoc.Document {
			return yamldoc.MustBegin(func(s *yamldoc.Scope) {
				st := s.Key(key).Is(value)
				if comment != "" {
					st.Comment(comment)
				}
				s.Key(key + "/nested").IsBlock(func(s *yamldoc.Scope) {
					s.Item(value)
					s.ItemBlock(func(s *yamldoc.Scope) {
						s.Key(key).Is(value)
					})
				})
			})
		}

		out := yamldoc.Encode(build())
		require.Equal(t, out, yamldoc.Encode(build()), "encoding is not deterministic")
		require.True(t, strings.HasSuffix(out, "\n\n"), "document must end with a blank line")
		require.False(t, strings.HasPrefix(out, "\n"), "document must not start with a blank line")
	})
}
