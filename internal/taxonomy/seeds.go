package taxonomy

// areaSeeds is the fixed taxonomy root list, upserted once per sync.
var areaSeeds = []AreaSeed{
	{Type: "DEVELOPMENT", NameEn: "Development", NamePt: "Desenvolvimento", Icon: "code", Color: "#3B82F6", Order: 1},
	{Type: "INFRASTRUCTURE", NameEn: "Infrastructure", NamePt: "Infraestrutura", Icon: "server", Color: "#10B981", Order: 2},
	{Type: "DATA", NameEn: "Data", NamePt: "Dados", Icon: "database", Color: "#8B5CF6", Order: 3},
	{Type: "DESIGN", NameEn: "Design", NamePt: "Design", Icon: "palette", Color: "#EC4899", Order: 4},
	{Type: "PRODUCT", NameEn: "Product & Management", NamePt: "Produto e Gestão", Icon: "clipboard", Color: "#F59E0B", Order: 5},
	{Type: "SECURITY", NameEn: "Security", NamePt: "Segurança", Icon: "shield", Color: "#EF4444", Order: 6},
}

// nicheSeeds is the fixed second-level taxonomy. Slugs here are the values
// referenced by the category sub-maps; renaming one requires updating both.
var nicheSeeds = []NicheSeed{
	{Slug: "frontend", AreaType: "DEVELOPMENT", NameEn: "Frontend", NamePt: "Frontend", Icon: "layout", Order: 1},
	{Slug: "backend", AreaType: "DEVELOPMENT", NameEn: "Backend", NamePt: "Backend", Icon: "terminal", Order: 2},
	{Slug: "mobile", AreaType: "DEVELOPMENT", NameEn: "Mobile", NamePt: "Mobile", Icon: "smartphone", Order: 3},
	{Slug: "gamedev", AreaType: "DEVELOPMENT", NameEn: "Game Development", NamePt: "Desenvolvimento de Jogos", Icon: "gamepad", Order: 4},
	{Slug: "blockchain", AreaType: "DEVELOPMENT", NameEn: "Blockchain", NamePt: "Blockchain", Icon: "link", Order: 5},

	{Slug: "devops", AreaType: "INFRASTRUCTURE", NameEn: "DevOps", NamePt: "DevOps", Icon: "repeat", Order: 1},
	{Slug: "cloud", AreaType: "INFRASTRUCTURE", NameEn: "Cloud", NamePt: "Nuvem", Icon: "cloud", Order: 2},
	{Slug: "qa-testing", AreaType: "INFRASTRUCTURE", NameEn: "QA & Testing", NamePt: "QA e Testes", Icon: "check-circle", Order: 3},

	{Slug: "databases", AreaType: "DATA", NameEn: "Databases", NamePt: "Bancos de Dados", Icon: "database", Order: 1},
	{Slug: "data-science", AreaType: "DATA", NameEn: "Data Science", NamePt: "Ciência de Dados", Icon: "bar-chart", Order: 2},
	{Slug: "machine-learning", AreaType: "DATA", NameEn: "Machine Learning", NamePt: "Aprendizado de Máquina", Icon: "cpu", Order: 3},
	{Slug: "data-engineering", AreaType: "DATA", NameEn: "Data Engineering", NamePt: "Engenharia de Dados", Icon: "git-merge", Order: 4},

	{Slug: "ui-design", AreaType: "DESIGN", NameEn: "UI Design", NamePt: "Design de Interface", Icon: "pen-tool", Order: 1},
	{Slug: "ux-research", AreaType: "DESIGN", NameEn: "UX Research", NamePt: "Pesquisa de UX", Icon: "users", Order: 2},

	{Slug: "agile", AreaType: "PRODUCT", NameEn: "Agile", NamePt: "Metodologias Ágeis", Icon: "trending-up", Order: 1},
	{Slug: "product-management", AreaType: "PRODUCT", NameEn: "Product Management", NamePt: "Gestão de Produto", Icon: "compass", Order: 2},
	{Slug: "collaboration", AreaType: "PRODUCT", NameEn: "Collaboration", NamePt: "Colaboração", Icon: "message-circle", Order: 3},

	{Slug: "application-security", AreaType: "SECURITY", NameEn: "Application Security", NamePt: "Segurança de Aplicações", Icon: "lock", Order: 1},
	{Slug: "information-security", AreaType: "SECURITY", NameEn: "Information Security", NamePt: "Segurança da Informação", Icon: "eye-off", Order: 2},
}
