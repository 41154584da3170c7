package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ChartListResponse respuesta de GET /api/charts.
type ChartListResponse struct {
	Format string      `json:"format"`
	Charts []ChartInfo `json:"charts"`
}

// ChartInfo nombre y título de un gráfico disponible.
type ChartInfo struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Section string `json:"section"`
	URL     string `json:"url"`
}
