package entity

// Dataset es la tabla cargada en memoria. Se lee una vez, se le agregan las columnas
// derivadas y desde ahí es de solo lectura.
type Dataset struct {
	Source  string   // ruta del CSV o tabla de origen
	Columns []string // cabecera tal como viene en el origen
	Records []SKURecord
}

// Shape devuelve (filas, columnas), como df.shape.
func (d *Dataset) Shape() (rows, cols int) {
	return len(d.Records), len(d.Columns)
}

// Head devuelve las primeras n filas (o todas si hay menos).
func (d *Dataset) Head(n int) []SKURecord {
	if n < 0 {
		n = 0
	}
	if n > len(d.Records) {
		n = len(d.Records)
	}
	return d.Records[:n]
}

// Len número de filas.
func (d *Dataset) Len() int { return len(d.Records) }
