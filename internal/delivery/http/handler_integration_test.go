package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Mousify/shoe-recognition-app-v2-Backend/config"
	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/domain"
	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/infrastructure/cache"
	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/infrastructure/catalog"
	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubVision returns a canned analysis without hitting the OpenAI API.
type stubVision struct {
	analysis *domain.ShoeAnalysis
	err      error
}

func (s *stubVision) AnalyzeShoe(ctx context.Context, req *domain.AnalysisRequest) (*domain.ShoeAnalysis, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

// testImage is a base64 payload large enough to pass the size pre-check.
func testImage() string {
	return base64.StdEncoding.EncodeToString(make([]byte, 2048))
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"*"},
		},
	}
}

func setupTestRouter(vision domain.VisionClient) *gin.Engine {
	store := catalog.NewStore()
	store.Load([]map[string]string{
		{"Handle": "leather-cleaner", "Title": "Leather Cleaner Spray", "Vendor": "Acme", "Variant Price": "9.99"},
		{"Handle": "suede-brush", "Title": "Suede Brush", "Vendor": "Acme"},
	})

	var analysisService *usecase.AnalysisService
	if vision != nil {
		analysisService = usecase.NewAnalysisService(
			cache.NewMemoryCache(),
			vision,
			store,
			usecase.AnalysisServiceConfig{},
		)
	}

	return SetupRouter(testConfig(), NewHandler(analysisService))
}

func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router := setupTestRouter(nil)

		req, _ := http.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["status"] != "healthy" {
			t.Errorf("status = %v, want healthy", response["status"])
		}
		if response["service"] != "mousify-backend" {
			t.Errorf("service = %v, want mousify-backend", response["service"])
		}
	})
}

func TestAnalysisEndpoint(t *testing.T) {
	t.Run("rejects missing image", func(t *testing.T) {
		router := setupTestRouter(&stubVision{analysis: &domain.ShoeAnalysis{}})

		req, _ := http.NewRequest("POST", "/api/v1/analysis", strings.NewReader(`{"language":"en"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("rejects undecodable base64", func(t *testing.T) {
		router := setupTestRouter(&stubVision{analysis: &domain.ShoeAnalysis{}})

		payload := `{"image":"not-base64!!!","language":"en"}`
		req, _ := http.NewRequest("POST", "/api/v1/analysis", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("rejects images below the size floor", func(t *testing.T) {
		router := setupTestRouter(&stubVision{analysis: &domain.ShoeAnalysis{}})

		tiny := base64.StdEncoding.EncodeToString([]byte("too small"))
		body, _ := json.Marshal(map[string]string{"image": tiny, "language": "en"})
		req, _ := http.NewRequest("POST", "/api/v1/analysis", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("returns analysis with recommended products", func(t *testing.T) {
		vision := &stubVision{analysis: &domain.ShoeAnalysis{
			StructuredDescription: domain.StructuredDescription{
				Materials: &domain.Materials{Upper: "leather"},
			},
			GeneralCare: "Use a leather cleaner.",
		}}
		router := setupTestRouter(vision)

		body, _ := json.Marshal(map[string]string{"image": testImage(), "language": "en"})
		req, _ := http.NewRequest("POST", "/api/v1/analysis", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response domain.AnalysisResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Source != "OpenAI" {
			t.Errorf("source = %q, want OpenAI", response.Source)
		}
		if len(response.RecommendedProducts) != 1 {
			t.Fatalf("recommendedProducts = %v, want exactly the leather cleaner", response.RecommendedProducts)
		}
		got := response.RecommendedProducts[0]
		if got.ID != "leather-cleaner" || got.Price != "$9.99" {
			t.Errorf("recommended product = %+v", got)
		}
	})

	t.Run("maps upstream failure to bad gateway", func(t *testing.T) {
		router := setupTestRouter(&stubVision{err: domain.ErrOpenAIAPIFailure})

		body, _ := json.Marshal(map[string]string{"image": testImage()})
		req, _ := http.NewRequest("POST", "/api/v1/analysis", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadGateway)
		}
	})

	t.Run("returns service unavailable when not wired", func(t *testing.T) {
		router := setupTestRouter(nil)

		body, _ := json.Marshal(map[string]string{"image": testImage()})
		req, _ := http.NewRequest("POST", "/api/v1/analysis", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusServiceUnavailable)
		}
	})
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name    string
		image   string
		wantErr bool
	}{
		{"valid large payload", testImage(), false},
		{"valid data URL", "data:image/jpeg;base64," + testImage(), false},
		{"not base64", "!!!", true},
		{"too small", base64.StdEncoding.EncodeToString([]byte("x")), true},
		{"malformed data URL", "data:image/jpeg;base64", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateImage(tt.image)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateImage() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
