package controller_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"clovable/pkg/controller"
)

// fakeSwitch records toggle calls and can be made to fail them while still
// tracking the state a well-behaved switch would hold.
type fakeSwitch struct {
	enabled    bool
	failToggle bool
	disables   int
	enables    int
}

func (f *fakeSwitch) Enable() error {
	f.enables++
	if f.failToggle {
		return errors.New("sink unavailable")
	}
	f.enabled = true

	return nil
}

func (f *fakeSwitch) Disable() error {
	f.disables++
	if f.failToggle {
		return errors.New("sink unavailable")
	}
	f.enabled = false

	return nil
}

func (f *fakeSwitch) Enabled() bool { return f.enabled }

func TestPathContains(t *testing.T) {
	match := controller.PathContains("/requests/active")

	req := httptest.NewRequest(http.MethodGet, "/api/chat/abc/requests/active", nil)
	require.True(t, match(req))

	req = httptest.NewRequest(http.MethodGet, "/api/chat/abc/messages", nil)
	require.False(t, match(req))
}

func TestWithSuppression_MutesDuringDownstreamCall(t *testing.T) {
	sink := &fakeSwitch{enabled: true}

	var enabledDuring bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		enabledDuring = sink.Enabled()
	})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/abc/requests/active", nil)
	rec := httptest.NewRecorder()

	controller.WithSuppression(controller.PathContains("/requests/active"), sink, next).ServeHTTP(rec, req)

	require.False(t, enabledDuring, "sink should be muted while downstream runs")
	require.True(t, sink.Enabled(), "sink should be restored after the request")
}

func TestWithSuppression_NonMatchingPathUntouched(t *testing.T) {
	sink := &fakeSwitch{enabled: true}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()

	controller.WithSuppression(controller.PathContains("/requests/active"), sink, next).ServeHTTP(rec, req)

	require.Zero(t, sink.disables, "non-matching requests must not touch the sink")
	require.Zero(t, sink.enables)
}

func TestWithSuppression_RestoresAfterPanic(t *testing.T) {
	sink := &fakeSwitch{enabled: true}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("downstream failure")
	})

	req := httptest.NewRequest(http.MethodGet, "/requests/active", nil)
	rec := httptest.NewRecorder()

	mw := controller.WithSuppression(controller.PathContains("/requests/active"), sink, next)
	require.Panics(t, func() { mw.ServeHTTP(rec, req) })

	require.True(t, sink.Enabled(), "sink must be restored even when downstream panics")
}

func TestWithSuppression_CompletesWhenToggleFails(t *testing.T) {
	sink := &fakeSwitch{enabled: true, failToggle: true}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/requests/active", nil)
	rec := httptest.NewRecorder()

	controller.WithSuppression(controller.PathContains("/requests/active"), sink, next).ServeHTTP(rec, req)

	require.True(t, called, "request must complete despite toggle failures")
	require.Equal(t, http.StatusOK, rec.Result().StatusCode)
	require.True(t, sink.Enabled(), "state after the request equals state before it")
}

func TestWithSuppression_PreservesDisabledState(t *testing.T) {
	// a sink that was already disabled stays disabled after the request
	sink := &fakeSwitch{enabled: false}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/requests/active", nil)
	rec := httptest.NewRecorder()

	controller.WithSuppression(controller.PathContains("/requests/active"), sink, next).ServeHTTP(rec, req)

	require.False(t, sink.Enabled())
}
