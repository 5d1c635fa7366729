package taxonomy

// skillAliases maps slugs to alternate names users search by. Aliases feed
// the read layer's containment matching, not classification.
var skillAliases = map[string][]string{
	"reactjs":       {"react", "react.js"},
	"react-native":  {"rn"},
	"vue.js":        {"vue", "vuejs"},
	"angular":       {"angular2", "angularjs"},
	"node.js":       {"node", "nodejs"},
	"next.js":       {"nextjs"},
	"nestjs":        {"nest"},
	"express":       {"expressjs", "express.js"},
	"ruby-on-rails": {"rails", "ror"},
	"spring-boot":   {"springboot"},
	"asp.net-core":  {"aspnet core", "dotnet core"},
	"postgresql":    {"postgres", "pgsql"},
	"mongodb":       {"mongo"},
	"sql-server":    {"mssql", "sqlserver"},
	"elasticsearch": {"elastic", "es"},
	"kubernetes":    {"k8s", "kube"},
	"docker":        {"containers"},
	"terraform":     {"tf", "iac"},
	"amazon-web-services":   {"aws"},
	"google-cloud-platform": {"gcp", "google cloud"},
	"azure":         {"microsoft azure"},
	"github-actions": {"gha"},
	"gitlab-ci":     {"gitlab pipelines"},
	"machine-learning": {"ml"},
	"deep-learning":    {"dl", "neural networks"},
	"nlp":              {"natural language processing"},
	"computer-vision":  {"cv"},
	"tensorflow":       {"tf"},
	"scikit-learn":     {"sklearn"},
	"jupyter-notebook": {"jupyter"},
	"unit-testing":     {"unit tests"},
	"tdd":              {"test driven development"},
	"jestjs":           {"jest"},
	"cypress":          {"cypress.io"},
	"tailwind-css":     {"tailwind", "tailwindcss"},
	"material-ui":      {"mui"},
	"jquery":           {"jq"},
	"graphql":          {"gql"},
	"grpc":             {"grpc-go"},
	"jwt":              {"json web token"},
	"oauth-2.0":        {"oauth", "oauth2"},
	"ci-cd":            {"ci", "cd", "continuous integration"},
	"visual-studio-code": {"vscode", "vs code"},
	"intellij-idea":      {"intellij"},
	"solidity":           {"sol"},
	"smart-contracts":    {"smart contract"},
	"user-experience":    {"ux"},
	"ui-design":          {"ui"},
	"power-bi":           {"powerbi"},
	"apache-kafka":       {"kafka"},
	"apache-spark":       {"spark"},
	"rabbitmq":           {"amqp"},
	"unity3d":            {"unity"},
}

// skillKeywords maps slugs to broader search terms that are not alternate
// names. Matched the same way as aliases on the read path.
var skillKeywords = map[string][]string{
	"reactjs":       {"spa", "hooks", "jsx"},
	"vue.js":        {"spa", "composition api"},
	"angular":       {"spa", "typescript"},
	"node.js":       {"javascript", "runtime", "server"},
	"django":        {"python", "orm"},
	"flask":         {"python", "microframework"},
	"fastapi":       {"python", "async"},
	"spring-boot":   {"java", "dependency injection"},
	"ruby-on-rails": {"ruby", "mvc"},
	"laravel":       {"php", "eloquent"},
	"flutter":       {"dart", "cross-platform"},
	"react-native":  {"cross-platform", "mobile apps"},
	"postgresql":    {"relational", "acid"},
	"mongodb":       {"nosql", "document database"},
	"redis":         {"cache", "key-value"},
	"elasticsearch": {"search engine", "full-text"},
	"docker":        {"containerization", "images"},
	"kubernetes":    {"orchestration", "containers"},
	"terraform":     {"infrastructure as code", "provisioning"},
	"jenkins":       {"pipelines", "automation"},
	"prometheus":    {"monitoring", "metrics"},
	"grafana":       {"dashboards", "observability"},
	"apache-kafka":  {"streaming", "message broker"},
	"rabbitmq":      {"message queue", "broker"},
	"tensorflow":    {"neural networks", "deep learning"},
	"pytorch":       {"neural networks", "research"},
	"pandas":        {"dataframes", "analysis"},
	"machine-learning": {"models", "training", "prediction"},
	"graphql":       {"api", "queries", "schema"},
	"grpc":          {"rpc", "protobuf"},
	"microservices": {"distributed systems", "architecture"},
	"scrum":         {"sprints", "ceremonies"},
	"kanban":        {"boards", "flow"},
	"figma":         {"prototyping", "wireframes"},
	"cypress":       {"e2e", "end to end"},
	"selenium":      {"browser automation"},
	"ethereum":      {"dapps", "evm"},
	"solidity":      {"smart contracts", "evm"},
	"git":           {"version control", "branching"},
	"penetration-testing": {"pentest", "ethical hacking"},
	"cryptography":        {"encryption", "hashing"},
}
