package domain

// GridPoint - точка фиксированной сетки выборки по Сан-Франциско.
// Address служит ключом соединения с результатами провайдера,
// DisplayName - название района для отображения на карте.
type GridPoint struct {
	Address     string `json:"address"`
	DisplayName string `json:"display_name"`
}
