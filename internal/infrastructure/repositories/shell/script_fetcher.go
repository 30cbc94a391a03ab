package shell

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/jlaffaye/ftp"

	"github.com/rios0rios0/unbox/internal/domain/entities"
)

const (
	fetchRetries = 2
	ftpTimeout   = 30 * time.Second
)

// scriptFetcher downloads remote script commands to executable
// temporary files. HTTP and HTTPS go through a retrying client; FTP
// uses an anonymous login.
type scriptFetcher struct {
	http *retryablehttp.Client
}

func newScriptFetcher() *scriptFetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = fetchRetries
	client.Logger = nil
	return &scriptFetcher{http: client}
}

// Fetch downloads rawURL to a temporary file, marks it executable, and
// returns its path. The caller owns the file and removes it after use.
func (it *scriptFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", &entities.FetchError{URL: rawURL, Err: err}
	}

	var body io.ReadCloser
	switch parsed.Scheme {
	case "http", "https":
		body, err = it.fetchHTTP(ctx, rawURL)
	case "ftp":
		body, err = it.fetchFTP(parsed)
	default:
		err = fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if err != nil {
		return "", &entities.FetchError{URL: rawURL, Err: err}
	}
	defer body.Close()

	local, err := writeTempScript(body)
	if err != nil {
		return "", &entities.FetchError{URL: rawURL, Err: err}
	}
	return local, nil
}

func (it *scriptFetcher) fetchHTTP(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := it.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

func (it *scriptFetcher) fetchFTP(parsed *url.URL) (io.ReadCloser, error) {
	host := parsed.Host
	if parsed.Port() == "" {
		host += ":21"
	}

	conn, err := ftp.Dial(host, ftp.DialWithTimeout(ftpTimeout))
	if err != nil {
		return nil, err
	}

	user, pass := "anonymous", "anonymous"
	if parsed.User != nil {
		user = parsed.User.Username()
		if p, ok := parsed.User.Password(); ok {
			pass = p
		}
	}
	if loginErr := conn.Login(user, pass); loginErr != nil {
		_ = conn.Quit()
		return nil, loginErr
	}

	resp, err := conn.Retr(parsed.Path)
	if err != nil {
		_ = conn.Quit()
		return nil, err
	}
	return &ftpBody{Response: resp, conn: conn}, nil
}

// ftpBody closes the data connection and the control connection together.
type ftpBody struct {
	*ftp.Response
	conn *ftp.ServerConn
}

func (b *ftpBody) Close() error {
	err := b.Response.Close()
	_ = b.conn.Quit()
	return err
}

func writeTempScript(body io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "unbox-script-*")
	if err != nil {
		return "", err
	}
	if _, copyErr := io.Copy(tmp, body); copyErr != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", copyErr
	}
	if closeErr := tmp.Close(); closeErr != nil {
		os.Remove(tmp.Name())
		return "", closeErr
	}
	if chmodErr := os.Chmod(tmp.Name(), 0o755); chmodErr != nil {
		os.Remove(tmp.Name())
		return "", chmodErr
	}
	return tmp.Name(), nil
}
