package taxonomy

// skillDisplayNames fixes English brand casing for tags whose formatted form
// would be wrong ("reactjs" -> "React", not "Reactjs"). Keyed by raw tag or
// slug, resolved with the usual two-tier fallback.
var skillDisplayNames = map[string]string{
	"reactjs":               "React",
	"react-native":          "React Native",
	"vue.js":                "Vue.js",
	"vuejs":                 "Vue.js",
	"next.js":               "Next.js",
	"nuxt.js":               "Nuxt.js",
	"node.js":               "Node.js",
	"nestjs":                "NestJS",
	"express":               "Express",
	"angularjs":             "AngularJS",
	"asp.net":               "ASP.NET",
	"asp.net-core":          "ASP.NET Core",
	"ruby-on-rails":         "Ruby on Rails",
	"spring-boot":           "Spring Boot",
	"jestjs":                "Jest",
	"mocha.js":              "Mocha",
	"mysql":                 "MySQL",
	"postgresql":            "PostgreSQL",
	"mongodb":               "MongoDB",
	"sqlite":                "SQLite",
	"sql-server":            "SQL Server",
	"mariadb":               "MariaDB",
	"dynamodb":              "DynamoDB",
	"couchdb":               "CouchDB",
	"graphql":               "GraphQL",
	"grpc":                  "gRPC",
	"jquery":                "jQuery",
	"rxjs":                  "RxJS",
	"d3.js":                 "D3.js",
	"three.js":              "Three.js",
	"socket.io":             "Socket.IO",
	"github":                "GitHub",
	"github-actions":        "GitHub Actions",
	"gitlab":                "GitLab",
	"gitlab-ci":             "GitLab CI",
	"circleci":              "CircleCI",
	"devops":                "DevOps",
	"ci-cd":                 "CI/CD",
	"tdd":                   "TDD",
	"nlp":                   "NLP",
	"etl":                   "ETL",
	"jwt":                   "JWT",
	"ssl":                   "SSL/TLS",
	"owasp":                 "OWASP",
	"oauth-2.0":             "OAuth 2.0",
	"amazon-web-services":   "Amazon Web Services",
	"google-cloud-platform": "Google Cloud Platform",
	"unity3d":               "Unity",
	"unreal-engine":         "Unreal Engine",
	"intellij-idea":         "IntelliJ IDEA",
	"visual-studio-code":    "Visual Studio Code",
	"jupyter-notebook":      "Jupyter Notebook",
	"scikit-learn":          "scikit-learn",
	"pytorch":               "PyTorch",
	"tensorflow":            "TensorFlow",
	"opencv":                "OpenCV",
	"apache-kafka":          "Apache Kafka",
	"apache-spark":          "Apache Spark",
	"rabbitmq":              "RabbitMQ",
	"power-bi":              "Power BI",
	"material-ui":           "Material UI",
	"tailwind-css":          "Tailwind CSS",
	"adobe-xd":              "Adobe XD",
	"nft":                   "NFT",
	"huggingface":           "Hugging Face",
	"php":                   "PHP",
	"npm":                   "npm",
}

// skillTranslations maps tags to Portuguese display names. Brand names keep
// their English form and are omitted here; only tags with a real translation
// appear.
var skillTranslations = map[string]string{
	"unit-testing":         "Testes Unitários",
	"integration-testing":  "Testes de Integração",
	"machine-learning":     "Aprendizado de Máquina",
	"deep-learning":        "Aprendizado Profundo",
	"computer-vision":      "Visão Computacional",
	"penetration-testing":  "Testes de Intrusão",
	"cryptography":         "Criptografia",
	"user-experience":      "Experiência do Usuário",
	"accessibility":        "Acessibilidade",
	"design-systems":       "Design Systems",
	"design-patterns":      "Padrões de Projeto",
	"microservices":        "Microsserviços",
	"domain-driven-design": "Domain-Driven Design",
	"clean-architecture":   "Arquitetura Limpa",
	"smart-contracts":      "Contratos Inteligentes",
	"code-review":          "Revisão de Código",
	"pair-programming":     "Programação em Par",
	"agile":                "Metodologias Ágeis",
	"serverless":           "Computação Serverless",
}

// languageTranslations maps English language names from the dataset to their
// Portuguese display names. Most language names are proper nouns and fall
// back to the original.
var languageTranslations = map[string]string{
	"Shell":    "Shell Script",
	"Assembly": "Linguagem Assembly",
}
