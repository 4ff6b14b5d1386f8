package querier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"runtime"
	"time"

	"github.com/gammazero/workerpool"

	"github.com/darkclainer/recnik/pkg/lexicon"
)

const (
	defaultHost     = "localhost:8000"
	defaultProtocol = "http"
	defaultAPIPath  = "/api"
	wordPath        = "word"
	randomPath      = "random"
)

var (
	ErrEmptyWord        = errors.New("empty word")
	ErrNotFound         = errors.New("word not found")
	ErrUnexpectedStatus = errors.New("unexpected response code")
)

type Config struct {
	// ExtraHeader specifies what header will be added to each request
	ExtraHeader map[string]string
	// Timeout specifies maximum wait time for each request, zero means no limit
	Timeout time.Duration
	// Host specifies remote host to which request will be sent
	Host     string
	Protocol string
	// APIPath is the path prefix of the lookup API
	APIPath string
	// MaxWorkers specifies how many workers decode response bodies
	// Zero value mean that it will be equal to number of logical CPU
	MaxWorkers int
}

// Remote queries the word lookup service over HTTP.
type Remote struct {
	client *http.Client
	config *Config
	pool   *workerpool.WorkerPool
	p      Parser
}

func NewRemote(client *http.Client, p Parser, config *Config) *Remote {
	if client == nil {
		client = &http.Client{}
	}
	if p == nil {
		p = &JSONParser{}
	}
	if config.Host == "" {
		config.Host = defaultHost
	}
	if config.Protocol == "" {
		config.Protocol = defaultProtocol
	}
	if config.APIPath == "" {
		config.APIPath = defaultAPIPath
	}
	if config.MaxWorkers < 1 { // nolint:gomnd // if number not specified
		config.MaxWorkers = runtime.NumCPU()
	}
	return &Remote{
		client: client,
		config: config,
		pool:   workerpool.New(config.MaxWorkers),
		p:      p,
	}
}

func (q *Remote) Lookup(ctx context.Context, word string) (*lexicon.Entry, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	entry, err := q.getEntry(ctx, q.newWordURL(word))
	if err != nil {
		return nil, fmt.Errorf("failed to lookup %q: %w", word, err)
	}
	return entry, nil
}

func (q *Remote) Random(ctx context.Context) (*lexicon.Entry, error) {
	entry, err := q.getEntry(ctx, q.newURL(randomPath))
	if err != nil {
		return nil, fmt.Errorf("failed to get random word: %w", err)
	}
	return entry, nil
}

func (q *Remote) getEntry(ctx context.Context, urlGet string) (*lexicon.Entry, error) {
	if q.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.config.Timeout)
		defer cancel()
	}
	response, err := q.get(ctx, urlGet)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	var entry *lexicon.Entry
	q.pool.SubmitWait(func() {
		entry, err = q.p.ParseEntry(response.Body)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (q *Remote) get(ctx context.Context, urlGet string) (*http.Response, error) {
	request, err := q.newRequest(ctx, urlGet)
	if err != nil {
		return nil, fmt.Errorf("can not assemble request: %w", err)
	}
	response, err := q.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	switch response.StatusCode {
	case http.StatusOK:
		return response, nil
	case http.StatusNotFound:
		response.Body.Close()
		return nil, ErrNotFound
	default:
		response.Body.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, response.StatusCode)
	}
}

func (q *Remote) newWordURL(word string) string {
	wordURL := q.newURL(wordPath)
	return wordURL + "/" + url.PathEscape(word)
}

func (q *Remote) newURL(elem string) string {
	u := &url.URL{
		Scheme: q.config.Protocol,
		Host:   q.config.Host,
		Path:   path.Join("/", q.config.APIPath, elem),
	}
	return u.String()
}

func (q *Remote) newRequest(ctx context.Context, urlRequest string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlRequest, nil)
	if err != nil {
		return nil, fmt.Errorf("can not form request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for key, value := range q.config.ExtraHeader {
		req.Header.Add(key, value)
	}
	return req, nil
}

func (q *Remote) Close(ctx context.Context) error {
	q.client.CloseIdleConnections()
	q.pool.StopWait()
	return nil
}
