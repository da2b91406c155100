package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/application/usecase"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	apphttp "github.com/jvaldiviae/cyberlink-api/internal/interfaces/http"
)

// fakePlanRepo planes fijos en memoria, solo las lecturas que usa el listado.
type fakePlanRepo struct {
	plans []*entity.Plan
}

func (r *fakePlanRepo) Create(*entity.Plan) error            { return nil }
func (r *fakePlanRepo) GetByID(string) (*entity.Plan, error) { return nil, nil }
func (r *fakePlanRepo) Update(*entity.Plan) error            { return nil }
func (r *fakePlanRepo) Delete(string) error                  { return nil }

func (r *fakePlanRepo) List() ([]*entity.Plan, error) {
	return r.plans, nil
}

func (r *fakePlanRepo) ListByActive(active bool) ([]*entity.Plan, error) {
	var out []*entity.Plan
	for _, p := range r.plans {
		if p.Active == active {
			out = append(out, p)
		}
	}
	return out, nil
}

func buildPlanApp() *fiber.App {
	repo := &fakePlanRepo{plans: []*entity.Plan{
		{
			ID: "p1", Name: "Hogar 50", Speed: "50 Mbps",
			MonthlyPrice: decimal.NewFromInt(60), Tipo: entity.PlanTipoResidencial,
			Active: true, CreatedAt: time.Now(),
		},
		{
			ID: "p2", Name: "Hogar 20 (descontinuado)", Speed: "20 Mbps",
			MonthlyPrice: decimal.NewFromInt(40), Tipo: entity.PlanTipoResidencial,
			Active: false, CreatedAt: time.Now(),
		},
	}}
	handler := apphttp.NewPlanHandler(usecase.NewPlanUseCase(repo))

	app := fiber.New()
	app.Get("/api/planes", handler.List)
	return app
}

func listPlans(t *testing.T, app *fiber.App, target string) (*http.Response, []dto.PlanResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}
	var out []dto.PlanResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestListPlanes_SinFiltroDevuelveTodos(t *testing.T) {
	app := buildPlanApp()

	resp, out := listPlans(t, app, "/api/planes")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, out, 2)
}

func TestListPlanes_FiltroActivoTrue(t *testing.T) {
	app := buildPlanApp()

	resp, out := listPlans(t, app, "/api/planes?activo=true")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, out, 1)
	assert.Equal(t, "Hogar 50", out[0].Name)
}

// activo=false filtra los inactivos; no debe comportarse como ausencia del parámetro.
func TestListPlanes_FiltroActivoFalse(t *testing.T) {
	app := buildPlanApp()

	resp, out := listPlans(t, app, "/api/planes?activo=false")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, out, 1)
	assert.Equal(t, "Hogar 20 (descontinuado)", out[0].Name)
}

func TestListPlanes_FiltroActivoInvalido(t *testing.T) {
	app := buildPlanApp()

	resp, _ := listPlans(t, app, "/api/planes?activo=quizas")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
