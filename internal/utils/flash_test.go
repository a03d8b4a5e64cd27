package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"penjualan_admin/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	c.Request = req
	return c, w
}

func flashCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == FlashCookieName {
			return ck
		}
	}
	return nil
}

func TestFlashStore_EncodeDecode(t *testing.T) {
	store := NewFlashStore("secret", false)
	in := []Flash{SuccessFlash("Login Berhasil"), ErrorFlash("Failed to fetch products")}

	token, err := store.Encode(in)
	require.NoError(t, err)

	out, err := store.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFlashStore_DecodeRejectsForeignSecret(t *testing.T) {
	token, err := NewFlashStore("secret1", false).Encode([]Flash{InfoFlash("Info", "x")})
	require.NoError(t, err)

	_, err = NewFlashStore("secret2", false).Decode(token)
	assert.Error(t, err)
}

func TestFlashStore_PersistThenConsumeAcrossRedirect(t *testing.T) {
	store := NewFlashStore("secret", false)

	// Request 1 queues a flash and redirects
	c1, w1 := newTestContext()
	store.Push(c1, SuccessFlash("Product has been added successfully."))
	store.Persist(c1)
	ck := flashCookie(w1)
	require.NotNil(t, ck)
	assert.True(t, ck.HttpOnly)

	// Request 2 renders it once and clears the cookie
	c2, w2 := newTestContext(&http.Cookie{Name: FlashCookieName, Value: ck.Value})
	store.Push(c2, InfoFlash("Info", "second"))
	flashes := store.Consume(c2)
	require.Len(t, flashes, 2)
	assert.Equal(t, "Product has been added successfully.", flashes[0].Description)
	assert.Equal(t, "second", flashes[1].Description)

	cleared := flashCookie(w2)
	require.NotNil(t, cleared)
	assert.True(t, cleared.MaxAge < 0)
}

func TestFlashStore_ConsumeWithoutCookie(t *testing.T) {
	store := NewFlashStore("secret", false)
	c, w := newTestContext()

	assert.Empty(t, store.Consume(c))
	assert.Nil(t, flashCookie(w))
}

func TestFlashStore_PersistNothingWritesNoCookie(t *testing.T) {
	store := NewFlashStore("secret", false)
	c, w := newTestContext()

	store.Persist(c)
	assert.Nil(t, flashCookie(w))
}

func TestFlashStore_TamperedCookieIgnored(t *testing.T) {
	logger.SetOutput(io.Discard)
	store := NewFlashStore("secret", false)
	c, _ := newTestContext(&http.Cookie{Name: FlashCookieName, Value: "garbage"})

	assert.Empty(t, store.Consume(c))
}
