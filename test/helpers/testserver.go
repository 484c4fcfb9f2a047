package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"evently_backend/database"
	"evently_backend/internal/app"
	"evently_backend/internal/config"
	"evently_backend/internal/logger"
	"evently_backend/pkg/contextkeys"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Заголовок, по которому тестовый сервер находит транзакцию теста.
// DBMiddleware увидит её в request context и положит в gin-контекст
// вместо общего пула - весь изменённый тестом стейт откатывается.
const testTxHeader = "X-Test-Tx"

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB

	mu  sync.RWMutex
	txs map[string]*gorm.DB
	ids map[*gorm.DB]string
}

// NewTestServer создает и настраивает тестовый сервер и БД
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	logger.Init(cfg.Server.Env)

	// Файлы uploads уходят во временную папку, а не в рабочую директорию
	tmpDir, err := os.MkdirTemp("", "evently-test-uploads-*")
	if err != nil {
		t.Fatalf("Не удалось создать временную папку для uploads: %v", err)
	}
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = tmpDir
	cfg.Storage.BaseURL = "/api/v1/files"
	cfg.Email.Enabled = false

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Не удалось подключиться к тестовой БД (%s): %v", dsn, err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Не удалось выполнить миграции для тестовой БД: %v", err)
	}

	router := app.SetupRouter(cfg, db)

	ts := &TestServer{
		DB:  db,
		txs: map[string]*gorm.DB{},
		ids: map[*gorm.DB]string{},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(testTxHeader); id != "" {
			ts.mu.RLock()
			tx := ts.txs[id]
			ts.mu.RUnlock()
			if tx != nil {
				ctx := context.WithValue(r.Context(), contextkeys.DBContextKey, tx)
				r = r.WithContext(ctx)
			}
		}
		router.ServeHTTP(w, r)
	})

	ts.Server = httptest.NewServer(handler)

	log.Printf("✅ Тестовый сервер запущен, тестовая БД (%s) настроена.", dsn)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// BeginTransaction открывает транзакцию теста и регистрирует её,
// чтобы SendRequest мог направлять запросы в неё
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("Не удалось открыть транзакцию: %v", tx.Error)
	}

	id := uuid.NewString()
	ts.mu.Lock()
	ts.txs[id] = tx
	ts.ids[tx] = id
	ts.mu.Unlock()

	return tx
}

// RollbackTransaction откатывает транзакцию теста и снимает регистрацию
func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	ts.mu.Lock()
	if id, ok := ts.ids[tx]; ok {
		delete(ts.txs, id)
		delete(ts.ids, tx)
	}
	ts.mu.Unlock()

	if err := tx.Rollback().Error; err != nil {
		t.Logf("Ошибка отката транзакции: %v", err)
	}
}

// SendRequest отправляет JSON-запрос на тестовый сервер.
// tx может быть nil - тогда запрос идет в общий пул БД.
func (ts *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader = nil
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	ts.setHeaders(req, tx, token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

// SendMultipart отправляет multipart/form-data запрос (загрузка файлов)
func (ts *TestServer) SendMultipart(t *testing.T, tx *gorm.DB, method, path, token string, fields map[string]string, fileField, fileName string, fileContent []byte) (*http.Response, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("Ошибка записи поля формы %s: %v", key, err)
		}
	}
	if fileField != "" {
		// CreateFormFile всегда ставит application/octet-stream,
		// а обработчик загрузок проверяет реальный MIME-тип
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fileField, fileName))
		if ct := mime.TypeByExtension(filepath.Ext(fileName)); ct != "" {
			h.Set("Content-Type", ct)
		}
		part, err := writer.CreatePart(h)
		if err != nil {
			t.Fatalf("Ошибка создания файловой части формы: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("Ошибка записи содержимого файла: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Ошибка закрытия multipart writer: %v", err)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	ts.setHeaders(req, tx, token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return ts.do(t, req)
}

func (ts *TestServer) setHeaders(req *http.Request, tx *gorm.DB, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if tx != nil {
		ts.mu.RLock()
		id := ts.ids[tx]
		ts.mu.RUnlock()
		req.Header.Set(testTxHeader, id)
	}
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
