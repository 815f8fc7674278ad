package job_source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"обычный текст", "  Atención   al cliente ", "Atención al cliente"},
		{"абзацы", "<p>Hola</p><p>mundo</p>", "Hola mundo"},
		{"сущности", "Ventas &amp; marketing", "Ventas & marketing"},
		{"список", "<ul><li>Excel</li><li>Word</li></ul>", "Excel Word"},
		{"скрипты выбрасываются", "<p>Texto</p><script>alert(1)</script><style>p{}</style>", "Texto"},
		{"перенос строки", "Línea 1<br>Línea 2", "Línea 1 Línea 2"},
		{"пусто", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, htmlToText(tt.in))
		})
	}
}
