package naming

type builtinColor struct {
	hex string
	fr  string
	en  string
}

// builtinColors is ordered by hue family; lookup order, and so tie-breaking,
// follows this order.
var builtinColors = []builtinColor{
	// Greys
	{"#000000", "Noir", "Black"},
	{"#2F4F4F", "Gris Ardoise Foncé", "Dark Slate Gray"},
	{"#708090", "Gris Ardoise", "Slate Gray"},
	{"#778899", "Gris Ardoise Clair", "Light Slate Gray"},
	{"#696969", "Gris Foncé", "Dim Gray"},
	{"#808080", "Gris", "Gray"},
	{"#A9A9A9", "Gris Moyen", "Dark Gray"},
	{"#C0C0C0", "Argent", "Silver"},
	{"#D3D3D3", "Gris Clair", "Light Gray"},
	{"#DCDCDC", "Gainsboro", "Gainsboro"},
	{"#F5F5F5", "Blanc Fumé", "White Smoke"},
	{"#FFFFFF", "Blanc", "White"},
	// Reds
	{"#800000", "Maroon", "Maroon"},
	{"#8B0000", "Rouge Foncé", "Dark Red"},
	{"#A52A2A", "Brun", "Brown"},
	{"#B22222", "Brique", "Firebrick"},
	{"#DC143C", "Cramoisi", "Crimson"},
	{"#FF0000", "Rouge", "Red"},
	{"#FF6347", "Tomate", "Tomato"},
	{"#FF7F50", "Corail", "Coral"},
	{"#CD5C5C", "Rouge Indien", "Indian Red"},
	{"#F08080", "Corail Clair", "Light Coral"},
	{"#E9967A", "Saumon Foncé", "Dark Salmon"},
	{"#FA8072", "Saumon", "Salmon"},
	{"#FFA07A", "Saumon Clair", "Light Salmon"},
	// Oranges
	{"#FF4500", "Rouge Orange", "Orange Red"},
	{"#FF8C00", "Orange Foncé", "Dark Orange"},
	{"#FFA500", "Orange", "Orange"},
	{"#FFD700", "Or", "Gold"},
	{"#FFFF00", "Jaune", "Yellow"},
	{"#FFFFE0", "Jaune Clair", "Light Yellow"},
	{"#FFFACD", "Chiffon Citron", "Lemon Chiffon"},
	{"#FAFAD2", "Or Clair", "Light Goldenrod Yellow"},
	{"#FFEFD5", "Papaye", "Papaya Whip"},
	{"#FFE4B5", "Mocassin", "Moccasin"},
	{"#FFDAB9", "Pêche", "Peach Puff"},
	{"#EEE8AA", "Goldenrod Pâle", "Pale Goldenrod"},
	{"#F0E68C", "Kaki", "Khaki"},
	{"#BDB76B", "Kaki Foncé", "Dark Khaki"},
	// Greens
	{"#556B2F", "Olive Foncé", "Dark Olive Green"},
	{"#808000", "Olive", "Olive"},
	{"#6B8E23", "Olive Drab", "Olive Drab"},
	{"#9ACD32", "Jaune Vert", "Yellow Green"},
	{"#32CD32", "Vert Citron", "Lime Green"},
	{"#00FF00", "Citron", "Lime"},
	{"#228B22", "Vert Forêt", "Forest Green"},
	{"#008000", "Vert", "Green"},
	{"#006400", "Vert Foncé", "Dark Green"},
	{"#7FFF00", "Chartreuse", "Chartreuse"},
	{"#7CFC00", "Vert Pelouse", "Lawn Green"},
	{"#ADFF2F", "Vert Jaune", "Green Yellow"},
	{"#90EE90", "Vert Clair", "Light Green"},
	{"#98FB98", "Vert Pâle", "Pale Green"},
	{"#8FBC8F", "Vert Mer Foncé", "Dark Sea Green"},
	{"#00FA9A", "Vert Printemps Moyen", "Medium Spring Green"},
	{"#00FF7F", "Vert Printemps", "Spring Green"},
	{"#2E8B57", "Vert Mer", "Sea Green"},
	{"#3CB371", "Vert Mer Moyen", "Medium Sea Green"},
	{"#20B2AA", "Vert Mer Clair", "Light Sea Green"},
	{"#66CDAA", "Aigue-marine Moyen", "Medium Aquamarine"},
	{"#7FFFD4", "Aigue-marine", "Aquamarine"},
	// Cyans / Blues
	{"#008080", "Sarcelle", "Teal"},
	{"#008B8B", "Cyan Foncé", "Dark Cyan"},
	{"#00FFFF", "Cyan", "Cyan"},
	{"#E0FFFF", "Cyan Clair", "Light Cyan"},
	{"#AFEEEE", "Turquoise Pâle", "Pale Turquoise"},
	{"#40E0D0", "Turquoise", "Turquoise"},
	{"#48D1CC", "Turquoise Moyen", "Medium Turquoise"},
	{"#00CED1", "Turquoise Foncé", "Dark Turquoise"},
	{"#5F9EA0", "Bleu Cadet", "Cadet Blue"},
	{"#4682B4", "Bleu Acier", "Steel Blue"},
	{"#B0C4DE", "Bleu Acier Clair", "Light Steel Blue"},
	{"#B0E0E6", "Bleu Poudre", "Powder Blue"},
	{"#ADD8E6", "Bleu Clair", "Light Blue"},
	{"#87CEEB", "Bleu Ciel", "Sky Blue"},
	{"#87CEFA", "Bleu Ciel Clair", "Light Sky Blue"},
	{"#00BFFF", "Bleu Ciel Profond", "Deep Sky Blue"},
	{"#1E90FF", "Bleu Dodger", "Dodger Blue"},
	{"#6495ED", "Bleuuet", "Cornflower Blue"},
	{"#4169E1", "Bleu Royal", "Royal Blue"},
	{"#0000FF", "Bleu", "Blue"},
	{"#0000CD", "Bleu Moyen", "Medium Blue"},
	{"#00008B", "Bleu Foncé", "Dark Blue"},
	{"#000080", "Marine", "Navy"},
	{"#191970", "Bleu Minuit", "Midnight Blue"},
	// Purples
	{"#FFF0F5", "Lavande Rougir", "Lavender Blush"},
	{"#D8BFD8", "Chardon", "Thistle"},
	{"#DDA0DD", "Prune", "Plum"},
	{"#EE82EE", "Violet", "Violet"},
	{"#DA70D6", "Orchidée", "Orchid"},
	{"#FF00FF", "Magenta", "Magenta"},
	{"#BA55D3", "Orchidée Moyen", "Medium Orchid"},
	{"#9370DB", "Violet Moyen", "Medium Purple"},
	{"#8A2BE2", "Bleu Violet", "Blue Violet"},
	{"#9400D3", "Violet Foncé", "Dark Violet"},
	{"#9932CC", "Orchidée Foncé", "Dark Orchid"},
	{"#8B008B", "Magenta Foncé", "Dark Magenta"},
	{"#800080", "Pourpre", "Purple"},
	{"#4B0082", "Indigo", "Indigo"},
	{"#483D8B", "Bleu Ardoise Foncé", "Dark Slate Blue"},
	{"#6A5ACD", "Bleu Ardoise", "Slate Blue"},
	{"#7B68EE", "Bleu Ardoise Moyen", "Medium Slate Blue"},
	// Pinks
	{"#FFC0CB", "Rose", "Pink"},
	{"#FFB6C1", "Rose Clair", "Light Pink"},
	{"#FF69B4", "Rose Vif", "Hot Pink"},
	{"#FF1493", "Rose Profond", "Deep Pink"},
	{"#C71585", "Violet Moyen Rouge", "Medium Violet Red"},
	{"#DB7093", "Violet Rouge Pâle", "Pale Violet Red"},
	// Browns
	{"#FFF8DC", "Soie de Maïs", "Cornsilk"},
	{"#FFEBCD", "Amande Blanchie", "Blanched Almond"},
	{"#FFE4C4", "Bisque", "Bisque"},
	{"#FFDEAD", "Blanc Navajo", "Navajo White"},
	{"#F5DEB3", "Blé", "Wheat"},
	{"#DEB887", "Bois Burly", "Burlywood"},
	{"#D2B48C", "Bronzage", "Tan"},
	{"#BC8F8F", "Brun Rosé", "Rosy Brown"},
	{"#F4A460", "Brun Sable", "Sandy Brown"},
	{"#DAA520", "Goldenrod", "Goldenrod"},
	{"#B8860B", "Goldenrod Foncé", "Dark Goldenrod"},
	{"#CD853F", "Pérou", "Peru"},
	{"#D2691E", "Chocolat", "Chocolate"},
	{"#8B4513", "Brun Selle", "Saddle Brown"},
	{"#A0522D", "Sienne", "Sienna"},
}
