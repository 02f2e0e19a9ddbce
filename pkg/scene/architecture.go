package scene

import (
	"image/color"

	"github.com/matzehuels/archdiagram/pkg/draw"
	"github.com/matzehuels/archdiagram/pkg/palette"
)

// Canvas size of the architecture diagram, in pixels.
const (
	Width  = 1600
	Height = 1200
)

// ArchitectureTitle is the heading drawn at the top of the diagram.
const ArchitectureTitle = "Finance System Architecture"

// PaletteKeys lists every palette key Architecture looks up.
var PaletteKeys = []palette.Key{
	palette.Frontend,
	palette.Backend,
	palette.AI,
	palette.Database,
	palette.External,
	palette.Text,
	palette.White,
}

// Literal colors that are not part of the palette.
var (
	black          = palette.MustHex("#000000")
	aiServicesFill = palette.MustHex("#FF6B6B")
	contractFill   = palette.MustHex("#E8F4FD")
	contractInk    = palette.MustHex("#4A90E2")
	amortFill      = palette.MustHex("#F0F9FF")
	amortInk       = palette.MustHex("#7ED321")
	auditFill      = palette.MustHex("#FDF2F8")
	auditInk       = palette.MustHex("#BD10E0")
	reportFill     = palette.MustHex("#FFF7ED")
	reportInk      = palette.MustHex("#F5A623")
	featureInk     = palette.MustHex("#E31E24")
)

// Architecture draws the Finance system architecture diagram on d.
// Palette keys are resolved before the first draw call; an undefined key
// returns an error and leaves d untouched.
func Architecture(d draw.Drawer, pal palette.Palette) error {
	c, err := pal.Resolve(PaletteKeys...)
	if err != nil {
		return err
	}
	ink, white := c[palette.Text], c[palette.White]

	center := func(s string, x, y float64, r draw.Role, col color.Color) {
		d.Text(s, draw.Pt(x, y), r, col, draw.Middle)
	}
	left := func(s string, x, y float64, r draw.Role, col color.Color) {
		d.Text(s, draw.Pt(x, y), r, col, draw.LeftMiddle)
	}

	center(ArchitectureTitle, Width/2, 50, draw.Title, ink)

	// MFE frontend
	draw.FilledBox(d, draw.Rect(100, 150, 400, 350), c[palette.Frontend])
	center("MFE Frontend", 250, 180, draw.Header, white)
	center("React + TypeScript", 250, 210, draw.Body, white)
	center("Port: 3000", 250, 240, draw.Small, white)
	center("• Contract Management UI", 250, 270, draw.Small, white)
	center("• Amortization Management", 250, 290, draw.Small, white)
	center("• Audit Log Viewer", 250, 310, draw.Small, white)

	// MS backend
	draw.FilledBox(d, draw.Rect(500, 150, 800, 350), c[palette.Backend])
	center("MS Backend Service", 650, 180, draw.Header, white)
	center("Spring Boot + JPA", 650, 210, draw.Body, white)
	center("Port: 8081", 650, 240, draw.Small, white)
	center("• RESTful API", 650, 270, draw.Small, white)
	center("• Swagger UI Documentation", 650, 290, draw.Small, white)
	center("• Audit Log Recording", 650, 310, draw.Small, white)

	// AI contract parser
	draw.FilledBox(d, draw.Rect(900, 150, 1200, 350), c[palette.AI])
	center("AI Contract Parser", 1050, 180, draw.Header, white)
	center("Spring Boot + AI", 1050, 210, draw.Body, white)
	center("Port: 8082", 1050, 240, draw.Small, white)
	center("• Document Parsing", 1050, 270, draw.Small, white)
	center("• Information Extraction", 1050, 290, draw.Small, white)

	// Database
	draw.FilledBox(d, draw.Rect(500, 450, 800, 600), c[palette.Database])
	center("PostgreSQL Database", 650, 480, draw.Header, white)
	center("• Contract Data", 650, 510, draw.Small, white)
	center("• Amortization Entries", 650, 530, draw.Small, white)
	center("• Audit Log (audit_log)", 650, 550, draw.Small, white)
	center("• Journal Entries", 650, 570, draw.Small, white)

	// File storage
	draw.FilledBox(d, draw.Rect(100, 450, 400, 600), c[palette.External])
	center("File Storage System", 250, 480, draw.Header, ink)
	center("• Contract Documents", 250, 510, draw.Small, ink)
	center("• Upload File Management", 250, 530, draw.Small, ink)
	center("• Static Resources", 250, 550, draw.Small, ink)

	// External AI services
	d.Rect(draw.Rect(1000, 450, 1300, 600), aiServicesFill, black, draw.OutlineWidth)
	center("External AI Services", 1150, 480, draw.Header, white)
	center("• DeepSeek API", 1150, 510, draw.Small, white)
	center("• Gemini API (Backup)", 1150, 530, draw.Small, white)
	center("• Gemma3 Model", 1150, 550, draw.Small, white)
	center("• Text Analysis & Extraction", 1150, 570, draw.Small, white)

	// Core modules
	d.Rect(draw.Rect(100, 700, 300, 820), contractFill, contractInk, draw.OutlineWidth)
	center("Contract Management", 200, 730, draw.Body, contractInk)
	center("• Contract CRUD", 200, 760, draw.Small, contractInk)
	center("• File Upload", 200, 780, draw.Small, contractInk)

	d.Rect(draw.Rect(350, 700, 550, 820), amortFill, amortInk, draw.OutlineWidth)
	center("Amortization Mgmt", 450, 730, draw.Body, amortInk)
	center("• Calculation", 450, 760, draw.Small, amortInk)
	center("• Payment Records", 450, 780, draw.Small, amortInk)

	d.Rect(draw.Rect(600, 700, 800, 820), auditFill, auditInk, draw.OutlineWidth)
	center("Audit Log", 700, 730, draw.Body, auditInk)
	center("• Operation Records", 700, 760, draw.Small, auditInk)
	center("• History Tracking", 700, 780, draw.Small, auditInk)

	d.Rect(draw.Rect(850, 700, 1050, 820), reportFill, reportInk, draw.OutlineWidth)
	center("Reports & Analytics", 950, 730, draw.Body, reportInk)
	center("• Dashboard", 950, 760, draw.Small, reportInk)
	center("• Data Statistics", 950, 780, draw.Small, reportInk)

	// Connections
	draw.DefaultArrow(d, draw.Pt(400, 250), draw.Pt(500, 250))
	center("HTTP API", 450, 230, draw.Small, ink)

	draw.DefaultArrow(d, draw.Pt(800, 250), draw.Pt(900, 250))
	center("Contract Parse", 850, 230, draw.Small, ink)

	draw.DefaultArrow(d, draw.Pt(650, 350), draw.Pt(650, 450))
	center("JPA/Hibernate", 700, 400, draw.Small, ink)

	draw.DefaultArrow(d, draw.Pt(500, 300), draw.Pt(400, 500))
	center("File Operations", 430, 380, draw.Small, ink)

	draw.DefaultArrow(d, draw.Pt(1050, 350), draw.Pt(1150, 450))
	center("API Calls", 1120, 380, draw.Small, ink)

	// Ports and stack
	left("Port Configuration:", 100, 900, draw.Body, ink)
	left("• MFE Frontend: localhost:3000", 100, 930, draw.Small, ink)
	left("• MS Backend: localhost:8081", 100, 950, draw.Small, ink)
	left("• AI Service: localhost:8082", 100, 970, draw.Small, ink)
	left("• Database: PostgreSQL (Local)", 100, 990, draw.Small, ink)

	left("Technology Stack:", 600, 900, draw.Body, ink)
	left("• Frontend: React + TypeScript + Ant Design", 600, 930, draw.Small, ink)
	left("• Backend: Spring Boot + JPA + PostgreSQL + Swagger", 600, 950, draw.Small, ink)
	left("• AI: Spring Boot + External AI APIs", 600, 970, draw.Small, ink)
	left("• Database: PostgreSQL + Flyway Migration", 600, 990, draw.Small, ink)

	left("External Services:", 1100, 900, draw.Body, ink)
	left("• DeepSeek AI API (Primary)", 1100, 930, draw.Small, ink)
	left("• Google Gemini API (Backup)", 1100, 950, draw.Small, ink)
	left("• Gemma3 Model Support", 1100, 970, draw.Small, ink)

	left("Latest Features:", 100, 1050, draw.Body, featureInk)
	left("• Audit Log functionality implemented", 100, 1080, draw.Small, featureInk)
	left("• Swagger UI API documentation integrated", 100, 1100, draw.Small, featureInk)
	left("• Payment operation history tracking", 100, 1120, draw.Small, featureInk)
	left("• Interactive API testing interface", 100, 1140, draw.Small, featureInk)

	return d.Err()
}
