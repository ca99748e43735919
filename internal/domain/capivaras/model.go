package capivaras

// Capivara representa un registro de la colección "capivaras".
// El ID se asigna al crear y no cambia nunca.
type Capivara struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	DataNascimento string `json:"dataNascimento"` // formato libre, no se valida
	HabitatID      string `json:"habitatId"`      // referencia externa, sin integridad referencial
}

// indexOf hace búsqueda lineal por ID. Devuelve -1 si no existe.
func indexOf(items []Capivara, id string) int {
	for i, c := range items {
		if c.ID == id {
			return i
		}
	}
	return -1
}
