package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/evotools-io/evo-client/internal/constants"
)

// CallbackServer is a short-lived HTTP server that receives the OAuth
// redirect on localhost and hands the authorization code back to the login
// flow. It accepts exactly one result; later requests are ignored.
type CallbackServer struct {
	expectedState string
	path          string
	listener      net.Listener
	server        *http.Server
	resultCh      chan callbackResult
	resultOnce    sync.Once
	closeOnce     sync.Once
}

type callbackResult struct {
	code string
	err  error
}

// StartCallbackServer listens on the host/port of redirectURL and serves its
// path. The redirect URL is registered with the issuer, so the listen
// address cannot be ephemeral.
func StartCallbackServer(redirectURL, expectedState string) (*CallbackServer, error) {
	parsed, err := url.Parse(redirectURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redirect URL: %w", err)
	}

	listener, err := net.Listen("tcp", parsed.Host)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", parsed.Host, err)
	}

	callback := &CallbackServer{
		expectedState: expectedState,
		path:          parsed.Path,
		listener:      listener,
		resultCh:      make(chan callbackResult, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(parsed.Path, callback.handleCallback)

	callback.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if serveErr := callback.server.Serve(callback.listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			callback.trySendResult(callbackResult{err: serveErr})
		}
	}()

	return callback, nil
}

// WaitForCode blocks until the redirect arrives, the timeout elapses, or ctx
// is canceled. The server is closed before returning.
func (c *CallbackServer) WaitForCode(ctx context.Context, timeout time.Duration) (string, error) {
	defer func() { _ = c.Close() }()

	select {
	case result := <-c.resultCh:
		return result.code, result.err
	case <-time.After(timeout):
		return "", constants.ErrLoginTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close shuts the server down. Safe to call more than once.
func (c *CallbackServer) Close() error {
	var closeErr error

	c.closeOnce.Do(func() {
		closeErr = c.server.Close()
	})

	return closeErr
}

func (c *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if state := query.Get("state"); state != c.expectedState {
		c.trySendResult(callbackResult{err: constants.ErrStateMismatch})
		http.Error(w, "state mismatch", http.StatusBadRequest)

		return
	}

	if oauthErr := query.Get("error"); oauthErr != "" {
		if description := query.Get("error_description"); description != "" {
			oauthErr = oauthErr + ": " + description
		}

		c.trySendResult(callbackResult{err: errors.New(oauthErr)})
		http.Error(w, "authorization failed", http.StatusBadRequest)

		return
	}

	code := query.Get("code")
	if code == "" {
		c.trySendResult(callbackResult{err: constants.ErrNoAuthorizationCode})
		http.Error(w, "missing code", http.StatusBadRequest)

		return
	}

	c.trySendResult(callbackResult{code: code})
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Login complete. You can close this window and return to the terminal."))
}

func (c *CallbackServer) trySendResult(result callbackResult) {
	c.resultOnce.Do(func() {
		c.resultCh <- result
	})
}
