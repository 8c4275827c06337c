package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tripledger/internal/dto"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const openMeteoURL = "https://api.open-meteo.com/v1/forecast?latitude=-25.43&longitude=-49.27&daily=precipitation_probability_max&timezone=America%2FSao_Paulo"

// PlannerService serves the informational travel lookups: historical weather
// outlooks, tourist train availability, place suggestions, and the composed
// day-by-day planner. Lookups are advisory and never touch the ledger.
type PlannerService struct {
	httpClient *http.Client
	logger     *zap.Logger
}

func NewPlannerService(logger *zap.Logger) *PlannerService {
	return &PlannerService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (s *PlannerService) JuneWeather() *dto.WeatherResponse {
	return &dto.WeatherResponse{
		City:               "Curitiba",
		Month:              "June",
		AverageTemperature: "10°C - 18°C",
		RainProbability:    "30% - 40%",
		Insight:            "June in Curitiba is usually cold and relatively dry, with less rain than most other months.",
	}
}

func (s *PlannerService) JunePeriodWeather() *dto.PeriodWeatherResponse {
	return &dto.PeriodWeatherResponse{
		City:               "Curitiba",
		Period:             "June 13-18",
		AverageTemperature: "9°C - 17°C",
		RainyDaysEstimate:  2,
		RainRiskLevel:      "low-to-moderate",
		Insight:            "Historically the June 13-18 window sees few rainy days, a good interval for outdoor activity.",
		Recommendation:     "Best for outdoor plans such as the tourist train, especially on Saturday.",
	}
}

func (s *PlannerService) TrainAvailability() *dto.TrainResponse {
	return &dto.TrainResponse{
		Train:          "Serra Verde Express",
		Route:          "Curitiba → Morretes",
		Duration:       "approx. 4h",
		OperatesInJune: "only weekends",
		RecommendedDay: "Saturday",
		WeatherRisk:    "low",
		Insight:        "The tourist train only runs on weekends in June. Saturday historically carries the lowest rain risk.",
		Recommendation: "Book the ride for Saturday and avoid Friday, which is more unstable.",
	}
}

func (s *PlannerService) OutdoorPlaces() []string {
	return []string{"Jardim Botânico", "Parque Tanguá", "Ópera de Arame", "Parque Barigui"}
}

func (s *PlannerService) IndoorPlaces() []string {
	return []string{"Museu Oscar Niemeyer", "Museu Paranaense", "Shopping Mueller"}
}

// climateRisk asks Open-Meteo for the precipitation outlook and classifies
// it. The canned historical estimate stands in when the API is unreachable.
func (s *PlannerService) climateRisk(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, openMeteoURL, nil)
	if err != nil {
		return "low"
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("Weather API unreachable, using historical outlook", zap.Error(err))
		return "low"
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("Weather API returned non-OK status", zap.Int("status", resp.StatusCode))
		return "low"
	}

	var payload struct {
		Daily struct {
			PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "low"
	}

	var max float64
	for _, p := range payload.Daily.PrecipitationProbabilityMax {
		if p > max {
			max = p
		}
	}
	switch {
	case max >= 70:
		return "high"
	case max >= 40:
		return "moderate"
	default:
		return "low"
	}
}

// BuildPlanner composes the trip planner: weather and train lookups run
// concurrently, then each day gets suggestions matching the climate risk.
func (s *PlannerService) BuildPlanner(ctx context.Context) (*dto.PlannerResponse, error) {
	var (
		risk  string
		train *dto.TrainResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		risk = s.climateRisk(gctx)
		return nil
	})
	g.Go(func() error {
		train = s.TrainAvailability()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	days := []string{"2024-06-13", "2024-06-14", "2024-06-15", "2024-06-16", "2024-06-17", "2024-06-18"}
	goodWeather := risk == "low"

	plannerDays := make([]dto.PlannerDay, 0, len(days))
	for _, date := range days {
		day := dto.PlannerDay{Date: date, Weather: "unstable", Suggestions: s.IndoorPlaces()}
		if goodWeather {
			day.Weather = "good"
			day.Suggestions = s.OutdoorPlaces()
		}
		plannerDays = append(plannerDays, day)
	}

	return &dto.PlannerResponse{
		City:        "Curitiba",
		Period:      "June 13 to 18",
		ClimateRisk: risk,
		Train:       train,
		Days:        plannerDays,
	}, nil
}
