package emailjs

// PublicKeyResponse HTTP response model
type PublicKeyResponse struct {
	PublicKey string `json:"publicKey"`
	ServiceID string `json:"serviceId"`
}

// CheckResponse диагностика конфигурации EmailJS: ключи не раскрываются,
// отдается только факт их наличия
type CheckResponse struct {
	EmailJSConfig CheckConfig `json:"emailjs_config"`
	Timestamp     string      `json:"timestamp"`
}

type CheckConfig struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
	ServiceID  string `json:"serviceId"`
	Ready      bool   `json:"ready"`
}
