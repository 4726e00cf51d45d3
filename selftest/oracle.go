// Package selftest cross-checks the calculator against an independent
// evaluator, by default the public mathjs web API, on randomly generated
// problems.
package selftest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultEndpoint is the mathjs expression evaluation API.
const DefaultEndpoint = "https://api.mathjs.org/v4/"

// Oracle evaluates expressions independently of package calc.
type Oracle interface {
	// Evaluate returns the value of an infix expression.
	Evaluate(ctx context.Context, expr string) (float64, error)
}

// MathJS is an Oracle which asks the mathjs web API. It is safe for
// concurrent use.
type MathJS struct {
	endpoint *url.URL
	client   *http.Client
	retries  int
	backoff  time.Duration
	prec     int
}

// Option modifies a MathJS oracle.
type Option func(*MathJS)

// WithClient sets the HTTP client used for requests. The default client has a
// ten second timeout.
func WithClient(client *http.Client) Option {
	return func(m *MathJS) {
		m.client = client
	}
}

// WithRetries sets the number of times a request is retried after a temporary
// failure. The default is 3.
func WithRetries(n int) Option {
	return func(m *MathJS) {
		m.retries = n
	}
}

// WithBackoff sets the wait before the first retry. Each subsequent retry
// waits twice as long as the previous. The default is 250ms.
func WithBackoff(d time.Duration) Option {
	return func(m *MathJS) {
		m.backoff = d
	}
}

// WithPrecision sets the number of significant digits in answers. The default
// is 8.
func WithPrecision(digits int) Option {
	return func(m *MathJS) {
		m.prec = digits
	}
}

// NewMathJS creates an oracle for the mathjs API at endpoint.
func NewMathJS(endpoint string, opts ...Option) (*MathJS, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New("selftest: endpoint must be an http or https URL, not " + strconv.Quote(endpoint))
	}
	m := MathJS{
		endpoint: u,
		client:   &http.Client{Timeout: 10 * time.Second},
		retries:  3,
		backoff:  250 * time.Millisecond,
		prec:     8,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return &m, nil
}

// Evaluate asks mathjs for the value of expr. Temporary failures are retried
// with exponential backoff until the retry limit is reached or ctx is done.
// Failures are *NetworkError.
func (m *MathJS) Evaluate(ctx context.Context, expr string) (float64, error) {
	wait := m.backoff
	for try := 0; ; try++ {
		r, err := m.get(ctx, expr)
		if err == nil {
			return r, nil
		}
		var ne *NetworkError
		if !errors.As(err, &ne) || !ne.Temporary || try >= m.retries {
			return 0, err
		}
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return 0, err
		case <-t.C:
		}
		wait *= 2
	}
}

// maxAnswer limits the size of a response body. Answers are single numbers.
const maxAnswer = 1 << 12

func (m *MathJS) get(ctx context.Context, expr string) (float64, error) {
	u := *m.endpoint
	q := u.Query()
	q.Set("expr", expr)
	q.Set("precision", strconv.Itoa(m.prec))
	u.RawQuery = q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, &NetworkError{Expr: expr, Err: err}
	}
	resp, err := m.client.Do(req)
	if err != nil {
		// Cancellation is final; anything else on the wire may clear up.
		return 0, &NetworkError{Expr: expr, Temporary: ctx.Err() == nil, Err: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAnswer))
	if err != nil {
		return 0, &NetworkError{Expr: expr, Status: resp.StatusCode, Temporary: ctx.Err() == nil, Err: err}
	}
	answer := strings.TrimSpace(string(body))
	switch {
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return 0, &NetworkError{Expr: expr, Status: resp.StatusCode, Temporary: true, Err: errors.New(resp.Status)}
	case resp.StatusCode != http.StatusOK:
		if answer == "" {
			answer = resp.Status
		}
		return 0, &NetworkError{Expr: expr, Status: resp.StatusCode, Err: errors.New(answer)}
	}
	r, err := strconv.ParseFloat(answer, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &NetworkError{Expr: expr, Status: resp.StatusCode, Err: err}
	}
	return r, nil
}

// NetworkError is an error asking an oracle for an answer.
type NetworkError struct {
	// Expr is the expression that was asked.
	Expr string
	// Status is the HTTP status code of the response, or 0 if there was none.
	Status int
	// Temporary is whether the same request might succeed later.
	Temporary bool
	// Err is the underlying error.
	Err error
}

func (err *NetworkError) Error() string {
	return "evaluating " + strconv.Quote(err.Expr) + " remotely: " + err.Err.Error()
}

func (err *NetworkError) Unwrap() error {
	return err.Err
}
