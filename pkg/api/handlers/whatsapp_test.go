package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/ent/enttest"
	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/whatsapp"
)

func setupWhatsAppHandler(t *testing.T) *WhatsAppHandler {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	cipher, err := integration.NewSecretCipher(testCipherKey)
	require.NoError(t, err)
	registry := integration.NewRegistry(client, cipher, logger.Nop())

	return NewWhatsAppHandler(whatsapp.NewService(registry, logger.Nop(), nil))
}

func TestWhatsAppSendMessageValidation(t *testing.T) {
	h := setupWhatsAppHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/whatsapp/messages", `{"to":"+14155552671"}`)
	require.NoError(t, h.SendMessage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWhatsAppSendMessageNotConfigured(t *testing.T) {
	h := setupWhatsAppHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/whatsapp/messages",
		`{"to":"+14155552671","body":"hello"}`)
	require.NoError(t, h.SendMessage(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
