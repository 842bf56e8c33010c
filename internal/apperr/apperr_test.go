package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOfWalksWrappedChain(t *testing.T) {
	inner := New(KindNotFound, "store.GetByID", "lecture not found: abc")
	wrapped := fmt.Errorf("while processing: %w", inner)

	require.Equal(t, KindNotFound, KindOf(wrapped))
	require.Equal(t, KindInternal, KindOf(errors.New("plain")))
	require.Equal(t, KindInternal, KindOf(nil))
}

func TestErrorFormatting(t *testing.T) {
	require.Equal(t, "op: something broke", New(KindInternal, "op", "something broke").Error())

	cause := errors.New("connection refused")
	require.Equal(t, "op: connection refused", Wrap(KindInternal, "op", cause).Error())
	require.True(t, errors.Is(Wrap(KindInternal, "op", cause), cause))
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:             http.StatusNotFound,
		KindInvalidInput:         http.StatusBadRequest,
		KindProviderUnavailable:  http.StatusServiceUnavailable,
		KindTranscriptionTimeout: http.StatusRequestTimeout,
		KindGenerationFailed:     http.StatusInternalServerError,
		KindTranscriptionFailed:  http.StatusInternalServerError,
		KindInternal:             http.StatusInternalServerError,
	}
	for kind, want := range cases {
		require.Equal(t, want, HTTPStatus(kind), "kind %s", kind)
	}
}
