package taxonomy

import "github.com/octopus-synapse/techcatalog/internal/models"

// Thematic category sub-maps. Keys are lowercased raw tags or normalized
// slugs. [Load] merges them in the order listed there, first registration
// winning on duplicate keys.

var frameworkCategories = map[string]Category{
	"reactjs":       {Type: models.SkillFramework, Niche: "frontend"},
	"react":         {Type: models.SkillFramework, Niche: "frontend"},
	"angular":       {Type: models.SkillFramework, Niche: "frontend"},
	"angularjs":     {Type: models.SkillFramework, Niche: "frontend"},
	"vue.js":        {Type: models.SkillFramework, Niche: "frontend"},
	"vuejs":         {Type: models.SkillFramework, Niche: "frontend"},
	"svelte":        {Type: models.SkillFramework, Niche: "frontend"},
	"next.js":       {Type: models.SkillFramework, Niche: "frontend"},
	"nuxt.js":       {Type: models.SkillFramework, Niche: "frontend"},
	"ember.js":      {Type: models.SkillFramework, Niche: "frontend"},
	"node.js":       {Type: models.SkillPlatform, Niche: "backend"},
	"express":       {Type: models.SkillFramework, Niche: "backend"},
	"nestjs":        {Type: models.SkillFramework, Niche: "backend"},
	"fastify":       {Type: models.SkillFramework, Niche: "backend"},
	"django":        {Type: models.SkillFramework, Niche: "backend"},
	"flask":         {Type: models.SkillFramework, Niche: "backend"},
	"fastapi":       {Type: models.SkillFramework, Niche: "backend"},
	"spring":        {Type: models.SkillFramework, Niche: "backend"},
	"spring-boot":   {Type: models.SkillFramework, Niche: "backend"},
	"ruby-on-rails": {Type: models.SkillFramework, Niche: "backend"},
	"laravel":       {Type: models.SkillFramework, Niche: "backend"},
	"symfony":       {Type: models.SkillFramework, Niche: "backend"},
	"asp.net":       {Type: models.SkillFramework, Niche: "backend"},
	"asp.net-core":  {Type: models.SkillFramework, Niche: "backend"},
	"gin":           {Type: models.SkillFramework, Niche: "backend"},
	"phoenix":       {Type: models.SkillFramework, Niche: "backend"},
	"flutter":       {Type: models.SkillFramework, Niche: "mobile"},
	"react-native":  {Type: models.SkillFramework, Niche: "mobile"},
	"ionic":         {Type: models.SkillFramework, Niche: "mobile"},
	"xamarin":       {Type: models.SkillFramework, Niche: "mobile"},
	"android":       {Type: models.SkillPlatform, Niche: "mobile"},
	"ios":           {Type: models.SkillPlatform, Niche: "mobile"},
	"unity3d":       {Type: models.SkillPlatform, Niche: "gamedev"},
	"unreal-engine": {Type: models.SkillPlatform, Niche: "gamedev"},
	"godot":         {Type: models.SkillPlatform, Niche: "gamedev"},
}

var databaseCategories = map[string]Category{
	"mysql":         {Type: models.SkillDatabase, Niche: "databases"},
	"postgresql":    {Type: models.SkillDatabase, Niche: "databases"},
	"mongodb":       {Type: models.SkillDatabase, Niche: "databases"},
	"sqlite":        {Type: models.SkillDatabase, Niche: "databases"},
	"redis":         {Type: models.SkillDatabase, Niche: "databases"},
	"elasticsearch": {Type: models.SkillDatabase, Niche: "databases"},
	"cassandra":     {Type: models.SkillDatabase, Niche: "databases"},
	"oracle":        {Type: models.SkillDatabase, Niche: "databases"},
	"sql-server":    {Type: models.SkillDatabase, Niche: "databases"},
	"mariadb":       {Type: models.SkillDatabase, Niche: "databases"},
	"dynamodb":      {Type: models.SkillDatabase, Niche: "databases"},
	"neo4j":         {Type: models.SkillDatabase, Niche: "databases"},
	"couchdb":       {Type: models.SkillDatabase, Niche: "databases"},
	"firebase":      {Type: models.SkillPlatform, Niche: "databases"},
	"supabase":      {Type: models.SkillPlatform, Niche: "databases"},
	"sql":           {Type: models.SkillTool, Niche: "databases"},
	"prisma":        {Type: models.SkillLibrary, Niche: "databases"},
	"hibernate":     {Type: models.SkillLibrary, Niche: "databases"},
	"sqlalchemy":    {Type: models.SkillLibrary, Niche: "databases"},
}

var devopsCategories = map[string]Category{
	"docker":           {Type: models.SkillTool, Niche: "devops"},
	"kubernetes":       {Type: models.SkillTool, Niche: "devops"},
	"terraform":        {Type: models.SkillTool, Niche: "devops"},
	"ansible":          {Type: models.SkillTool, Niche: "devops"},
	"jenkins":          {Type: models.SkillTool, Niche: "devops"},
	"github-actions":   {Type: models.SkillTool, Niche: "devops"},
	"gitlab-ci":        {Type: models.SkillTool, Niche: "devops"},
	"circleci":         {Type: models.SkillTool, Niche: "devops"},
	"helm":             {Type: models.SkillTool, Niche: "devops"},
	"prometheus":       {Type: models.SkillTool, Niche: "devops"},
	"grafana":          {Type: models.SkillTool, Niche: "devops"},
	"nginx":            {Type: models.SkillTool, Niche: "devops"},
	"apache-kafka":     {Type: models.SkillPlatform, Niche: "data-engineering"},
	"rabbitmq":         {Type: models.SkillTool, Niche: "backend"},
	"amazon-web-services": {Type: models.SkillPlatform, Niche: "cloud"},
	"aws":              {Type: models.SkillPlatform, Niche: "cloud"},
	"azure":            {Type: models.SkillPlatform, Niche: "cloud"},
	"google-cloud-platform": {Type: models.SkillPlatform, Niche: "cloud"},
	"heroku":           {Type: models.SkillPlatform, Niche: "cloud"},
	"digitalocean":     {Type: models.SkillPlatform, Niche: "cloud"},
	"vercel":           {Type: models.SkillPlatform, Niche: "cloud"},
	"netlify":          {Type: models.SkillPlatform, Niche: "cloud"},
	"serverless":       {Type: models.SkillMethodology, Niche: "cloud"},
	"linux":            {Type: models.SkillPlatform, Niche: "devops"},
	"bash":             {Type: models.SkillTool, Niche: "devops"},
}

var dataAICategories = map[string]Category{
	"pandas":           {Type: models.SkillLibrary, Niche: "data-science"},
	"numpy":            {Type: models.SkillLibrary, Niche: "data-science"},
	"matplotlib":       {Type: models.SkillLibrary, Niche: "data-science"},
	"jupyter-notebook": {Type: models.SkillTool, Niche: "data-science"},
	"tensorflow":       {Type: models.SkillLibrary, Niche: "machine-learning"},
	"pytorch":          {Type: models.SkillLibrary, Niche: "machine-learning"},
	"keras":            {Type: models.SkillLibrary, Niche: "machine-learning"},
	"scikit-learn":     {Type: models.SkillLibrary, Niche: "machine-learning"},
	"machine-learning": {Type: models.SkillMethodology, Niche: "machine-learning"},
	"deep-learning":    {Type: models.SkillMethodology, Niche: "machine-learning"},
	"nlp":              {Type: models.SkillMethodology, Niche: "machine-learning"},
	"computer-vision":  {Type: models.SkillMethodology, Niche: "machine-learning"},
	"opencv":           {Type: models.SkillLibrary, Niche: "machine-learning"},
	"apache-spark":     {Type: models.SkillPlatform, Niche: "data-engineering"},
	"airflow":          {Type: models.SkillTool, Niche: "data-engineering"},
	"etl":              {Type: models.SkillMethodology, Niche: "data-engineering"},
	"power-bi":         {Type: models.SkillTool, Niche: "data-science"},
	"tableau":          {Type: models.SkillTool, Niche: "data-science"},
	"langchain":        {Type: models.SkillLibrary, Niche: "machine-learning"},
	"huggingface":      {Type: models.SkillPlatform, Niche: "machine-learning"},
}

var testingCategories = map[string]Category{
	"unit-testing":       {Type: models.SkillMethodology, Niche: "qa-testing"},
	"integration-testing": {Type: models.SkillMethodology, Niche: "qa-testing"},
	"tdd":                {Type: models.SkillMethodology, Niche: "qa-testing"},
	"jestjs":             {Type: models.SkillLibrary, Niche: "qa-testing"},
	"mocha.js":           {Type: models.SkillLibrary, Niche: "qa-testing"},
	"cypress":            {Type: models.SkillTool, Niche: "qa-testing"},
	"selenium":           {Type: models.SkillTool, Niche: "qa-testing"},
	"playwright":         {Type: models.SkillTool, Niche: "qa-testing"},
	"junit":              {Type: models.SkillLibrary, Niche: "qa-testing"},
	"pytest":             {Type: models.SkillLibrary, Niche: "qa-testing"},
	"phpunit":            {Type: models.SkillLibrary, Niche: "qa-testing"},
	"rspec":              {Type: models.SkillLibrary, Niche: "qa-testing"},
	"testng":             {Type: models.SkillLibrary, Niche: "qa-testing"},
	"postman":            {Type: models.SkillTool, Niche: "qa-testing"},
}

var designCategories = map[string]Category{
	"figma":        {Type: models.SkillTool, Niche: "ui-design"},
	"sketch":       {Type: models.SkillTool, Niche: "ui-design"},
	"adobe-xd":     {Type: models.SkillTool, Niche: "ui-design"},
	"photoshop":    {Type: models.SkillTool, Niche: "ui-design"},
	"illustrator":  {Type: models.SkillTool, Niche: "ui-design"},
	"css":          {Type: models.SkillTool, Niche: "frontend"},
	"html":         {Type: models.SkillTool, Niche: "frontend"},
	"sass":         {Type: models.SkillTool, Niche: "frontend"},
	"tailwind-css": {Type: models.SkillFramework, Niche: "frontend"},
	"bootstrap":    {Type: models.SkillFramework, Niche: "frontend"},
	"material-ui":  {Type: models.SkillLibrary, Niche: "frontend"},
	"user-experience": {Type: models.SkillMethodology, Niche: "ux-research"},
	"accessibility":   {Type: models.SkillMethodology, Niche: "ux-research"},
	"design-systems":  {Type: models.SkillMethodology, Niche: "ui-design"},
}

var securityCategories = map[string]Category{
	"oauth-2.0":           {Type: models.SkillMethodology, Niche: "application-security"},
	"jwt":                 {Type: models.SkillTool, Niche: "application-security"},
	"penetration-testing": {Type: models.SkillMethodology, Niche: "information-security"},
	"cryptography":        {Type: models.SkillMethodology, Niche: "information-security"},
	"owasp":               {Type: models.SkillMethodology, Niche: "application-security"},
	"ssl":                 {Type: models.SkillTool, Niche: "information-security"},
	"keycloak":            {Type: models.SkillTool, Niche: "application-security"},
	"burp-suite":          {Type: models.SkillTool, Niche: "information-security"},
	"metasploit":          {Type: models.SkillTool, Niche: "information-security"},
	"wireshark":           {Type: models.SkillTool, Niche: "information-security"},
}

var collaborationCategories = map[string]Category{
	"git":        {Type: models.SkillTool, Niche: "collaboration"},
	"github":     {Type: models.SkillPlatform, Niche: "collaboration"},
	"gitlab":     {Type: models.SkillPlatform, Niche: "collaboration"},
	"bitbucket":  {Type: models.SkillPlatform, Niche: "collaboration"},
	"jira":       {Type: models.SkillTool, Niche: "product-management"},
	"confluence": {Type: models.SkillTool, Niche: "collaboration"},
	"slack":      {Type: models.SkillTool, Niche: "collaboration"},
	"notion":     {Type: models.SkillTool, Niche: "collaboration"},
	"trello":     {Type: models.SkillTool, Niche: "product-management"},
}

var libraryCategories = map[string]Category{
	"jquery":     {Type: models.SkillLibrary, Niche: "frontend"},
	"redux":      {Type: models.SkillLibrary, Niche: "frontend"},
	"rxjs":       {Type: models.SkillLibrary, Niche: "frontend"},
	"axios":      {Type: models.SkillLibrary, Niche: "frontend"},
	"webpack":    {Type: models.SkillTool, Niche: "frontend"},
	"vite":       {Type: models.SkillTool, Niche: "frontend"},
	"babel":      {Type: models.SkillTool, Niche: "frontend"},
	"graphql":    {Type: models.SkillTool, Niche: "backend"},
	"apollo":     {Type: models.SkillLibrary, Niche: "backend"},
	"grpc":       {Type: models.SkillTool, Niche: "backend"},
	"socket.io":  {Type: models.SkillLibrary, Niche: "backend"},
	"celery":     {Type: models.SkillLibrary, Niche: "backend"},
	"lodash":     {Type: models.SkillLibrary, Niche: "frontend"},
	"three.js":   {Type: models.SkillLibrary, Niche: "frontend"},
	"d3.js":      {Type: models.SkillLibrary, Niche: "data-science"},
	"electron":   {Type: models.SkillFramework, Niche: "frontend"},
	"rest":       {Type: models.SkillMethodology, Niche: "backend"},
	"websocket":  {Type: models.SkillTool, Niche: "backend"},
	"maven":      {Type: models.SkillTool, Niche: "backend"},
	"gradle":     {Type: models.SkillTool, Niche: "backend"},
	"npm":        {Type: models.SkillTool, Niche: "frontend"},
	"yarn":       {Type: models.SkillTool, Niche: "frontend"},
}

var methodologyCategories = map[string]Category{
	"agile":             {Type: models.SkillMethodology, Niche: "agile"},
	"scrum":             {Type: models.SkillMethodology, Niche: "agile"},
	"kanban":            {Type: models.SkillMethodology, Niche: "agile"},
	"microservices":     {Type: models.SkillMethodology, Niche: "backend"},
	"domain-driven-design": {Type: models.SkillMethodology, Niche: "backend"},
	"clean-architecture":   {Type: models.SkillMethodology, Niche: "backend"},
	"solid-principles":     {Type: models.SkillMethodology, Niche: "backend"},
	"design-patterns":      {Type: models.SkillMethodology, Niche: "backend"},
	"ci-cd":                {Type: models.SkillMethodology, Niche: "devops"},
	"pair-programming":     {Type: models.SkillMethodology, Niche: "collaboration"},
	"code-review":          {Type: models.SkillMethodology, Niche: "collaboration"},
}

var blockchainCategories = map[string]Category{
	"ethereum":        {Type: models.SkillPlatform, Niche: "blockchain"},
	"solidity":        {Type: models.SkillTool, Niche: "blockchain"},
	"web3":            {Type: models.SkillMethodology, Niche: "blockchain"},
	"smart-contracts": {Type: models.SkillMethodology, Niche: "blockchain"},
	"bitcoin":         {Type: models.SkillPlatform, Niche: "blockchain"},
	"hyperledger":     {Type: models.SkillPlatform, Niche: "blockchain"},
	"nft":             {Type: models.SkillMethodology, Niche: "blockchain"},
}

var ideCategories = map[string]Category{
	"visual-studio-code": {Type: models.SkillTool, Niche: ""},
	"visual-studio":      {Type: models.SkillTool, Niche: ""},
	"intellij-idea":      {Type: models.SkillTool, Niche: ""},
	"vim":                {Type: models.SkillTool, Niche: ""},
	"neovim":             {Type: models.SkillTool, Niche: ""},
	"eclipse":            {Type: models.SkillTool, Niche: ""},
	"xcode":              {Type: models.SkillTool, Niche: "mobile"},
	"android-studio":     {Type: models.SkillTool, Niche: "mobile"},
}
