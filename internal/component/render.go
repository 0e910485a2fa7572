// component/render.go
package component

// Sprite — компонент для отрисовки: имя текстуры в реестре ассетов
type Sprite struct {
	Name string
}
