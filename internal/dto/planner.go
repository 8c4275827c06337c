package dto

type WeatherResponse struct {
	City               string `json:"city"`
	Month              string `json:"month"`
	AverageTemperature string `json:"average_temperature"`
	RainProbability    string `json:"rain_probability"`
	Insight            string `json:"insight"`
}

type PeriodWeatherResponse struct {
	City               string `json:"city"`
	Period             string `json:"period"`
	AverageTemperature string `json:"average_temperature"`
	RainyDaysEstimate  int    `json:"rainy_days_estimate"`
	RainRiskLevel      string `json:"rain_risk_level"`
	Insight            string `json:"insight"`
	Recommendation     string `json:"recommendation"`
}

type TrainResponse struct {
	Train          string `json:"train"`
	Route          string `json:"route"`
	Duration       string `json:"duration"`
	OperatesInJune string `json:"operates_in_june"`
	RecommendedDay string `json:"recommended_day"`
	WeatherRisk    string `json:"weather_risk"`
	Insight        string `json:"insight"`
	Recommendation string `json:"recommendation"`
}

type PlannerDay struct {
	Date        string   `json:"date"`
	Weather     string   `json:"weather"`
	Suggestions []string `json:"suggestions"`
}

type PlannerResponse struct {
	City        string         `json:"city"`
	Period      string         `json:"period"`
	ClimateRisk string         `json:"climate_risk"`
	Train       *TrainResponse `json:"train"`
	Days        []PlannerDay   `json:"days"`
}
