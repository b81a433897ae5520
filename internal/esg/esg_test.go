package esg

func singleCategoryCatalog() Catalog {
	return Catalog{Categories: []Category{
		{ID: "cat", Title: "1. Categoria Teste", Questions: []Question{
			{ID: "q1", Text: "Pergunta 1", Category: "cat"},
			{ID: "q2", Text: "Pergunta 2", Category: "cat"},
		}},
	}}
}

func twoCategoryCatalog() Catalog {
	return Catalog{Categories: []Category{
		{ID: "a", Title: "1. Alfa", Questions: []Question{
			{ID: "a1", Category: "a"}, {ID: "a2", Category: "a"},
			{ID: "a3", Category: "a"}, {ID: "a4", Category: "a"},
			{ID: "a5", Category: "a"},
		}},
		{ID: "b", Title: "Beta", Questions: []Question{
			{ID: "b1", Category: "b"}, {ID: "b2", Category: "b"},
			{ID: "b3", Category: "b"}, {ID: "b4", Category: "b"},
			{ID: "b5", Category: "b"},
		}},
	}}
}
