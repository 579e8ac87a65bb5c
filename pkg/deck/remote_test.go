package deck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"arcanum/pkg/logger"
)

func init() {
	logger.Logger = zap.NewNop()
}

func remoteDeckServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestRefreshFromRemoteReplacesCatalog(t *testing.T) {
	server := remoteDeckServer(t, `{
		"name": "test deck",
		"cards": [
			{"id": "major_00", "name": "The Fool", "arcana": "major", "number": 0},
			{"id": "major_01", "name": "The Magician", "arcana": "major", "number": 1}
		]
	}`)
	defer server.Close()

	catalog := NewCatalog()
	require.NoError(t, catalog.RefreshFromRemote(context.Background(), server.URL, time.Second))

	assert.Equal(t, 2, catalog.Size())
	card, ok := catalog.FindByName("the magician")
	require.True(t, ok)
	require.NotNil(t, card.Number)
	assert.Equal(t, 1, *card.Number)
}

func TestRefreshFromRemoteRejectsUnnamedCard(t *testing.T) {
	server := remoteDeckServer(t, `{
		"name": "test deck",
		"cards": [
			{"id": "major_00", "name": "The Fool", "arcana": "major", "number": 0},
			{"id": "major_01", "name": "", "arcana": "major", "number": 1}
		]
	}`)
	defer server.Close()

	catalog := NewCatalog()
	err := catalog.RefreshFromRemote(context.Background(), server.URL, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unnamed card")
	assert.Equal(t, 78, catalog.Size())
}

func TestRefreshFromRemoteRejectsUnnumberedMajor(t *testing.T) {
	// 大阿卡纳没有编号会让跨度分析失效，整副拒绝
	server := remoteDeckServer(t, `{
		"name": "test deck",
		"cards": [
			{"id": "major_00", "name": "The Fool", "arcana": "major", "number": 0},
			{"id": "major_17", "name": "The Star", "arcana": "major"}
		]
	}`)
	defer server.Close()

	catalog := NewCatalog()
	err := catalog.RefreshFromRemote(context.Background(), server.URL, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing number")
	assert.Equal(t, 78, catalog.Size())
}

func TestRefreshFromRemoteRejectsTooSmallDeck(t *testing.T) {
	server := remoteDeckServer(t, `{"name": "test deck", "cards": [{"id": "major_00", "name": "The Fool", "arcana": "major", "number": 0}]}`)
	defer server.Close()

	catalog := NewCatalog()
	err := catalog.RefreshFromRemote(context.Background(), server.URL, time.Second)
	require.Error(t, err)
	assert.Equal(t, 78, catalog.Size())
}

func TestRefreshFromRemoteNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	catalog := NewCatalog()
	err := catalog.RefreshFromRemote(context.Background(), server.URL, time.Second)
	require.Error(t, err)
	assert.Equal(t, 78, catalog.Size())
}
