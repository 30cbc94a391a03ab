//go:build unit

package shell_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/unbox/internal/domain/entities"
	"github.com/rios0rios0/unbox/internal/infrastructure/repositories/shell"
)

func TestScriptFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("should download to an executable temporary file", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("#!/bin/sh\necho ok\n"))
		}))
		defer server.Close()
		fetcher := shell.NewScriptFetcher()

		// when
		local, err := fetcher.Fetch(context.Background(), server.URL+"/setup.sh")

		// then
		require.NoError(t, err)
		defer os.Remove(local)
		info, statErr := os.Stat(local)
		require.NoError(t, statErr)
		assert.NotZero(t, info.Mode()&0o111)
		data, readErr := os.ReadFile(local)
		require.NoError(t, readErr)
		assert.Equal(t, "#!/bin/sh\necho ok\n", string(data))
	})

	t.Run("should reject an unsupported scheme", func(t *testing.T) {
		t.Parallel()

		// given
		fetcher := shell.NewScriptFetcher()

		// when
		_, err := fetcher.Fetch(context.Background(), "gopher://example.com/setup.sh")

		// then
		var fetchErr *entities.FetchError
		require.ErrorAs(t, err, &fetchErr)
	})

	t.Run("should report an unreachable server as a fetch error", func(t *testing.T) {
		t.Parallel()

		// given
		fetcher := shell.NewScriptFetcher()

		// when
		_, err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1/setup.sh")

		// then
		var fetchErr *entities.FetchError
		require.ErrorAs(t, err, &fetchErr)
	})
}
