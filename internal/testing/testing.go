// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/octopus-synapse/techcatalog/internal/models"
)

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// JSONResponse builds a 200 response carrying the given JSON body.
func JSONResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// SequenceRoundTripper serves one queued response per request, in order,
// for exercising pagination. A nil entry yields a transport error.
type SequenceRoundTripper struct {
	Responses []*http.Response
	Requests  []*http.Request
}

func (s *SequenceRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	s.Requests = append(s.Requests, req)
	if len(s.Responses) == 0 {
		return nil, errors.New("no more queued responses")
	}
	resp := s.Responses[0]
	s.Responses = s.Responses[1:]
	if resp == nil {
		return nil, errors.New("simulated transport failure")
	}
	return resp, nil
}

// FakeLanguageSource is a test double for sources.LanguageSource.
type FakeLanguageSource struct {
	Items []models.ParsedLanguage
	Err   error
}

func (f *FakeLanguageSource) Languages(ctx context.Context) ([]models.ParsedLanguage, error) {
	return f.Items, f.Err
}

// FakeSkillSource is a test double for sources.SkillSource.
type FakeSkillSource struct {
	Items []models.ParsedSkill
	Err   error
}

func (f *FakeSkillSource) Skills(ctx context.Context) ([]models.ParsedSkill, error) {
	return f.Items, f.Err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
