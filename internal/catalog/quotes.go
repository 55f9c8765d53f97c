package catalog

// quotes is keyed by category, then language.
var quotes = map[string]map[string][]string{
	"motivational": {
		"en": {
			"Dream big and dare to fail",
			"Believe you can and you're halfway there",
			"The only impossible journey is the one you never begin",
			"Success is not final, failure is not fatal",
			"Your limitation—it's only your imagination",
			"Push yourself because no one else is going to do it for you",
			"Great things never come from comfort zones",
			"Dream it. Wish it. Do it.",
			"Success doesn't just find you. You have to go out and get it",
			"The harder you work for something, the greater you'll feel when you achieve it",
			"The future belongs to those who believe in the beauty of their dreams",
			"Don't watch the clock; do what it does. Keep going",
			"It always seems impossible until it's done",
			"The secret of getting ahead is getting started",
			"The best way to predict the future is to create it",
		},
		"es": {
			"Sueña en grande y atrévete a fallar",
			"Cree que puedes y ya estás a mitad de camino",
			"El único viaje imposible es el que nunca comienzas",
			"El éxito no es definitivo, el fracaso no es fatal",
			"Tu limitación es solo tu imaginación",
			"Empújate porque nadie más lo hará por ti",
			"Las grandes cosas nunca vienen de las zonas de confort",
			"Sueña. Desea. Hazlo.",
			"El éxito no te encuentra. Tienes que salir a buscarlo",
			"Cuanto más duro trabajes para algo, mayor será la sensación cuando lo logres",
		},
		"fr": {
			"Rêvez grand et osez échouer",
			"Croyez que vous pouvez et vous êtes à mi-chemin",
			"Le seul voyage impossible est celui que vous ne commencez jamais",
			"Le succès n'est pas définitif, l'échec n'est pas fatal",
			"Votre limitation n'est que votre imagination",
			"Poussez-vous car personne d'autre ne le fera pour vous",
			"De grandes choses ne viennent jamais des zones de confort",
			"Rêvez. Souhaitez. Faites.",
			"Le succès ne vous trouve pas. Vous devez aller le chercher",
			"Plus vous travaillez dur pour quelque chose, plus vous vous sentirez bien quand vous l'aurez accompli",
		},
		"hi": {
			"बड़े सपने देखो और असफल होने का साहस करो",
			"मानो कि तुम कर सकते हैं और तुम आधे रास्ते पहुँच गए",
			"एकमात्र असंभव यात्रा वह है जिसे तुम कभी शुरू नहीं करते",
			"सफलता अंतिम नहीं है, असफलता घातक नहीं है",
			"आपकी सीमा - यह केवल आपकी कल्पना है",
		},
	},
	"aesthetic": {
		"en": {
			"Stay wild, moon child",
			"Good vibes only",
			"She believed she could, so she did",
			"Create your own sunshine",
			"Life is tough, but so are you",
			"Collect moments, not things",
			"Be a voice, not an echo",
			"Embrace the glorious mess that you are",
			"Stars can't shine without darkness",
			"Bloom where you are planted",
		},
		"es": {
			"Mantente salvaje, niña de la luna",
			"Solo buenas vibras",
			"Ella creyó que podía, así que lo hizo",
			"Crea tu propio sol",
			"La vida es dura, pero tú también",
		},
	},
	"memes": {
		"en": {
			"When life gives you Monday, dip it in glitter and sparkle all day",
			"I'm not arguing, I'm just explaining why I'm right",
			"Coffee: because adulting is hard",
			"I'm not lazy, I'm on energy saving mode",
			"My bed is a magical place where I suddenly remember everything I forgot to do",
		},
	},
	"business": {
		"en": {
			"The only way to do great work is to love what you do",
			"Your time is limited, don't waste it living someone else's life",
			"Opportunities don't happen. You create them",
			"Don't let the fear of losing be greater than the excitement of winning",
			"The harder the conflict, the more glorious the triumph",
		},
	},
	"inspirational": {
		"en": {
			"Everything you've ever wanted is on the other side of fear",
			"It does not matter how slowly you go as long as you do not stop",
			"The future belongs to those who believe in the beauty of their dreams",
			"Success is not how high you have climbed, but how you make a positive difference to the world",
		},
	},
}
