package mirror

import (
	"errors"
	"testing"
)

func TestMessageFormats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		got  string
		want string
	}{
		{UpdatedGitHubMessage("flamehud", "abc", 1577836800, "flamehud_0123abcd.zip"), "HUD flamehud updated. MD5: abc, timestamp: 1577836800, file: flamehud_0123abcd.zip."},
		{UpdatedGenericMessage("yahud", "abc", "yahud_0123abcd.zip"), "HUD yahud updated. MD5: abc, file: yahud_0123abcd.zip."},
		{UpToDateMessage("yahud"), "HUD yahud is up to date."},
		{ErrorMessage("yahud", errors.New("boom")), "Error while processing HUD yahud: boom"},
		{DatabaseNotFoundMessage("huds.xml"), "HUD database huds.xml not found."},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got=%q want=%q", c.got, c.want)
		}
	}
}
