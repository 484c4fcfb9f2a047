package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"evently_backend/internal/models"
	"evently_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// Содержимое не валидируется, важен только MIME-тип части
var fakePNG = []byte("\x89PNG\r\n\x1a\nfake image bytes")

// TestPortfolio_PublicList - портфолио видно на публичном профиле
func TestPortfolio_PublicList(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)
	video := CreateTestPortfolioVideo(t, tx, provider.ID, "https://youtube.com/watch?v=abc123")

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/providers/"+provider.ID+"/portfolio", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, video.ID)
	assert.Contains(t, bodyStr, "youtube.com")
}

// TestPortfolio_AddVideo - видео добавляется ссылкой на YouTube, без файла
func TestPortfolio_AddVideo(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, _ := helpers.CreateAndLoginProvider(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/provider/me/portfolio", token, map[string]interface{}{
		"type":        "video",
		"youtube_url": "https://youtube.com/watch?v=xyz789",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var item struct {
		Type       string `json:"type"`
		YoutubeURL string `json:"youtube_url"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &item))
	assert.Equal(t, "video", item.Type)
	assert.Equal(t, "https://youtube.com/watch?v=xyz789", item.YoutubeURL)
}

// TestPortfolio_AddPhoto - фото загружается multipart'ом и попадает в uploads
func TestPortfolio_AddPhoto(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)

	res, bodyStr := ts.SendMultipart(t, tx, "POST", "/api/v1/provider/me/portfolio", token,
		map[string]string{"type": "photo"}, "file", "shot.png", fakePNG)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var item models.PortfolioItem
	assert.NoError(t, tx.First(&item, "provider_id = ?", provider.ID).Error)
	assert.Equal(t, models.PortfolioTypePhoto, item.Type)
	assert.NotEmpty(t, item.Src)
	assert.NotNil(t, item.UploadID)

	var upload models.Upload
	assert.NoError(t, tx.First(&upload, "id = ?", *item.UploadID).Error)
	assert.Equal(t, "portfolio", upload.Usage)
	assert.Equal(t, "shot.png", upload.OriginalName)
	assert.Equal(t, "image/png", upload.MimeType)
}

// TestPortfolio_PlanQuota - лимит фото из фич тарифа
func TestPortfolio_PlanQuota(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)

	plan := models.Plan{
		Name:     "Tiny",
		Price:    5,
		Currency: "USD",
		Status:   models.PlanStatusActive,
	}
	plan.SetFeatures(map[string]any{"max_portfolio_uploads": 1})
	assert.NoError(t, tx.Create(&plan).Error)
	assert.NoError(t, tx.Model(&models.Provider{}).Where("id = ?", provider.ID).Update("plan_id", plan.ID).Error)

	// Первое фото умещается в лимит
	res, bodyStr := ts.SendMultipart(t, tx, "POST", "/api/v1/provider/me/portfolio", token,
		map[string]string{"type": "photo"}, "file", "first.png", fakePNG)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	// Второе упирается в лимит тарифа
	res2, bodyStr2 := ts.SendMultipart(t, tx, "POST", "/api/v1/provider/me/portfolio", token,
		map[string]string{"type": "photo"}, "file", "second.png", fakePNG)
	assert.Equal(t, http.StatusForbidden, res2.StatusCode)
	assert.Contains(t, bodyStr2, "limit reached")
}

// TestPortfolio_RejectsBadFileType - не-изображение отклоняется
func TestPortfolio_RejectsBadFileType(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, _ := helpers.CreateAndLoginProvider(t, ts, tx)

	res, bodyStr := ts.SendMultipart(t, tx, "POST", "/api/v1/provider/me/portfolio", token,
		map[string]string{"type": "photo"}, "file", "resume.pdf", []byte("%PDF-1.4 fake"))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid file type")
}

// TestPortfolio_UpdateVideoURL - youtube_url правится только у видео
func TestPortfolio_UpdateVideoURL(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)
	video := CreateTestPortfolioVideo(t, tx, provider.ID, "https://youtube.com/watch?v=old")

	res, bodyStr := ts.SendRequest(t, tx, "PATCH", "/api/v1/provider/me/portfolio/"+video.ID, token, map[string]interface{}{
		"youtube_url": "https://youtube.com/watch?v=new",
		"featured":    true,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "watch?v=new")
}

// TestPortfolio_ForeignItemHidden - чужой элемент портфолио отдается как 404
func TestPortfolio_ForeignItemHidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, owner := helpers.CreateAndLoginProvider(t, ts, tx)
	otherToken, _, _ := helpers.CreateAndLoginProvider(t, ts, tx)
	video := CreateTestPortfolioVideo(t, tx, owner.ID, "https://youtube.com/watch?v=mine")

	res, _ := ts.SendRequest(t, tx, "DELETE", "/api/v1/provider/me/portfolio/"+video.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Элемент остался на месте
	var count int64
	tx.Model(&models.PortfolioItem{}).Where("id = ?", video.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestPortfolio_Delete - удаление убирает и элемент, и строку uploads
func TestPortfolio_Delete(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)

	res, _ := ts.SendMultipart(t, tx, "POST", "/api/v1/provider/me/portfolio", token,
		map[string]string{"type": "photo"}, "file", "gone.png", fakePNG)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var item models.PortfolioItem
	assert.NoError(t, tx.First(&item, "provider_id = ?", provider.ID).Error)

	delRes, _ := ts.SendRequest(t, tx, "DELETE", "/api/v1/provider/me/portfolio/"+item.ID, token, nil)
	assert.Equal(t, http.StatusOK, delRes.StatusCode)

	var count int64
	tx.Model(&models.PortfolioItem{}).Where("id = ?", item.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	tx.Model(&models.Upload{}).Where("id = ?", *item.UploadID).Count(&count)
	assert.Equal(t, int64(0), count)
}
