package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-pilot-api/internal/domain"
	"github.com/vfg2006/ads-pilot-api/internal/usecases/scanning"
	scanmocks "github.com/vfg2006/ads-pilot-api/internal/usecases/scanning/mocks"
	"github.com/vfg2006/ads-pilot-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestScanCampaigns(t *testing.T) {
	t.Run("Sem access_token responde 400 e nunca retorna dados mock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockScanner := scanmocks.NewMockScanner(ctrl)
		// O serviço de scan não deve ser chamado

		req := httptest.NewRequest(http.MethodPost, "/api/campaigns/scan",
			bytes.NewBufferString(`{"customer_id":"customers/1234567890"}`))
		recorder := httptest.NewRecorder()

		ScanCampaigns(mockScanner)(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
		assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
	})

	t.Run("Corpo inválido responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockScanner := scanmocks.NewMockScanner(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/api/campaigns/scan",
			bytes.NewBufferString(`{invalid`))
		recorder := httptest.NewRecorder()

		ScanCampaigns(mockScanner)(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	})

	t.Run("Com access_token devolve o resumo do serviço como JSON", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockScanner := scanmocks.NewMockScanner(ctrl)
		mockScanner.EXPECT().
			Scan(gomock.Any(), "access-123", "customers/1234567890").
			Return(scanning.MockSummary())

		req := httptest.NewRequest(http.MethodPost, "/api/campaigns/scan",
			bytes.NewBufferString(`{"access_token":"access-123","customer_id":"customers/1234567890"}`))
		recorder := httptest.NewRecorder()

		ScanCampaigns(mockScanner)(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		var summary domain.ScanSummary
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&summary))
		assert.Equal(t, *scanning.MockSummary(), summary)
	})
}
