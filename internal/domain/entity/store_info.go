package entity

// StoreInfo identidad del negocio para el encabezado del recibo.
// LogoURL es una data URL (imagen embebida en base64), de modo que el
// documento es autocontenido y exportable sin acceso a red.
type StoreInfo struct {
	Name    string
	Address string
	Email   string
	Phone   string
	LogoURL string
}
