package shoutrrr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_addDefaultTitle(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		address        string
		defaultTitle   string
		updatedAddress string
		errMessage     string
	}{
		"generic_with_empty_title": {
			address:        "generic://example.com?title=",
			defaultTitle:   "Router Login",
			updatedAddress: "generic://example.com?title=",
		},
		"generic_with_title": {
			address:        "generic://example.com?title=MyTitle",
			defaultTitle:   "Router Login",
			updatedAddress: "generic://example.com?title=MyTitle",
		},
		"generic_without_title": {
			address:        "generic://example.com",
			defaultTitle:   "Router Login",
			updatedAddress: "generic://example.com?title=Router+Login",
		},
		"malformed_address": {
			address:      "generic://example.com/%zz",
			defaultTitle: "Router Login",
			errMessage:   `parsing address as url: parse "generic://example.com/%zz": invalid URL escape "%zz"`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			updatedAddress, err := addDefaultTitle(testCase.address, testCase.defaultTitle)

			if testCase.errMessage != "" {
				require.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.updatedAddress, updatedAddress)
		})
	}
}

func Test_New_no_address(t *testing.T) {
	t.Parallel()

	client, err := New(Settings{})

	require.NoError(t, err)
	client.Notify("message")
}
