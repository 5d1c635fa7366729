package taxonomy

// skillColors maps tags to brand hex colors shown by catalog consumers.
// Resolved with the usual two-tier (raw tag, then slug) fallback; a miss
// means the record is stored without a color.
var skillColors = map[string]string{
	"reactjs":       "#61DAFB",
	"react-native":  "#61DAFB",
	"angular":       "#DD0031",
	"vue.js":        "#4FC08D",
	"svelte":        "#FF3E00",
	"next.js":       "#000000",
	"node.js":       "#339933",
	"nestjs":        "#E0234E",
	"django":        "#092E20",
	"flask":         "#000000",
	"fastapi":       "#009688",
	"spring":        "#6DB33F",
	"spring-boot":   "#6DB33F",
	"ruby-on-rails": "#CC0000",
	"laravel":       "#FF2D20",
	"flutter":       "#02569B",
	"mysql":         "#4479A1",
	"postgresql":    "#4169E1",
	"mongodb":       "#47A248",
	"sqlite":        "#003B57",
	"redis":         "#DC382D",
	"elasticsearch": "#005571",
	"docker":        "#2496ED",
	"kubernetes":    "#326CE5",
	"terraform":     "#7B42BC",
	"ansible":       "#EE0000",
	"jenkins":       "#D24939",
	"grafana":       "#F46800",
	"prometheus":    "#E6522C",
	"nginx":         "#009639",
	"amazon-web-services": "#FF9900",
	"azure":         "#0078D4",
	"google-cloud-platform": "#4285F4",
	"heroku":        "#430098",
	"tensorflow":    "#FF6F00",
	"pytorch":       "#EE4C2C",
	"pandas":        "#150458",
	"numpy":         "#013243",
	"jupyter-notebook": "#F37626",
	"apache-kafka":  "#231F20",
	"apache-spark":  "#E25A1C",
	"graphql":       "#E10098",
	"git":           "#F05032",
	"github":        "#181717",
	"gitlab":        "#FC6D26",
	"jira":          "#0052CC",
	"figma":         "#F24E1E",
	"sketch":        "#F7B500",
	"tailwind-css":  "#06B6D4",
	"bootstrap":     "#7952B3",
	"sass":          "#CC6699",
	"css":           "#1572B6",
	"html":          "#E34F26",
	"jquery":        "#0769AD",
	"webpack":       "#8DD6F9",
	"vite":          "#646CFF",
	"cypress":       "#17202C",
	"selenium":      "#43B02A",
	"ethereum":      "#3C3C3D",
	"solidity":      "#363636",
	"firebase":      "#FFCA28",
	"supabase":      "#3FCF8E",
	"rabbitmq":      "#FF6600",
	"unity3d":       "#000000",
	"godot":         "#478CBF",
}
