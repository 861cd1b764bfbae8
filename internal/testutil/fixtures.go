package testutil

// Trimmed Data Dragon records. Shapes match the live CDN; values are cut down
// to what the normalizers and tests actually look at.

const ChampionAatroxJSON = `{
	"id": "Aatrox",
	"key": "266",
	"name": "Aatrox",
	"title": "the Darkin Blade",
	"blurb": "Once honored defenders of Shurima against the Void, Aatrox and his brethren would eventually become an even greater threat.",
	"partype": "Blood Well",
	"tags": ["Fighter", "Tank"],
	"stats": {"hp": 650, "hpperlevel": 114, "armor": 38, "attackdamage": 60, "movespeed": 345},
	"passive": {
		"name": "Deathbringer Stance",
		"description": "Periodically, Aatrox's next basic attack deals bonus physical damage.",
		"image": {"full": "Aatrox_Passive.png"}
	},
	"spells": [
		{"name": "The Darkin Blade", "description": "Aatrox slams his greatsword down.", "cooldown": [14, 12, 10, 8, 6], "cooldownBurn": "14/12/10/8/6", "cost": [0, 0, 0, 0, 0], "costBurn": "0", "range": [25000, 25000, 25000, 25000, 25000], "rangeBurn": "25000", "image": {"full": "AatroxQ.png"}},
		{"name": "Infernal Chains", "description": "Aatrox smashes the ground.", "cooldown": [26, 23, 20, 17, 14], "cooldownBurn": "26/23/20/17/14", "cost": [0, 0, 0, 0, 0], "costBurn": "0", "range": [825, 825, 825, 825, 825], "rangeBurn": "825", "image": {"full": "AatroxW.png"}},
		{"name": "Umbral Dash", "description": "Aatrox lunges.", "cooldown": [9, 8, 7, 6, 5], "cooldownBurn": "9/8/7/6/5", "cost": [0, 0, 0, 0, 0], "costBurn": "0", "range": [300, 300, 300, 300, 300], "rangeBurn": "300", "image": {"full": "AatroxE.png"}},
		{"name": "World Ender", "description": "Aatrox unleashes his demonic form.", "cooldown": [120, 100, 80], "cooldownBurn": "120/100/80", "cost": [0, 0, 0], "costBurn": "0", "range": [25000, 25000, 25000], "rangeBurn": "25000", "image": {"full": "AatroxR.png"}}
	],
	"skins": [
		{"num": 0, "name": "default", "chromas": false},
		{"num": 1, "name": "Justicar Aatrox", "chromas": false}
	],
	"allytips": ["Use Umbral Dash while casting The Darkin Blade to reposition."],
	"enemytips": ["Aatrox's attacks are well telegraphed; dodge the sweet spots."]
}`

// Ahri carries the camelCase tip spelling and burn-only spell costs.
const ChampionAhriJSON = `{
	"id": "Ahri",
	"key": "103",
	"name": "Ahri",
	"title": "the Nine-Tailed Fox",
	"blurb": "Innately connected to the magic of the spirit realm, Ahri is a fox-like vastaya.",
	"partype": "Mana",
	"tags": ["Mage", "Assassin"],
	"stats": {"hp": 590, "mp": 418, "armor": 21, "attackdamage": 53, "movespeed": 330},
	"passive": {
		"name": "Essence Theft",
		"description": "Ahri gains stacks when her abilities hit enemies.",
		"image": {"full": "Ahri_SoulEater2.png"}
	},
	"spells": [
		{"name": "Orb of Deception", "description": "Ahri sends out her orb.", "cooldown": [7, 7, 7, 7, 7], "cooldownBurn": "7", "costBurn": "55/65/75/85/95", "range": [880, 880, 880, 880, 880], "rangeBurn": "880", "image": {"full": "AhriOrbofDeception.png"}},
		{"name": "Fox-Fire", "description": "Ahri releases three fox-fires.", "cooldown": [9, 8, 7, 6, 5], "cooldownBurn": "9/8/7/6/5", "costBurn": "30", "range": [725, 725, 725, 725, 725], "rangeBurn": "725", "image": {"full": "AhriFoxFire.png"}},
		{"name": "Charm", "description": "Ahri blows a kiss.", "cooldown": [14, 14, 14, 14, 14], "cooldownBurn": "14", "costBurn": "60", "range": [975, 975, 975, 975, 975], "rangeBurn": "975", "image": {"full": "AhriSeduce.png"}},
		{"name": "Spirit Rush", "description": "Ahri dashes forward.", "cooldown": [130, 105, 80], "cooldownBurn": "130/105/80", "costBurn": "100", "range": [450, 450, 450], "rangeBurn": "450", "image": {"full": "AhriTumble.png"}}
	],
	"skins": [{"num": 0, "name": "default", "chromas": false}],
	"allyTips": ["Use Charm to set up your combos."],
	"enemyTips": ["Stay behind minions to block Charm."]
}`

const ItemBootsJSON = `{
	"name": "Boots",
	"description": "<mainText>Slightly increases Move Speed</mainText>",
	"plaintext": "Slightly increases Move Speed",
	"into": ["3006"],
	"gold": {"base": 300, "total": 300, "sell": 210, "purchasable": true},
	"tags": ["Boots"],
	"maps": {"11": true, "12": true},
	"stats": {"FlatMovementSpeedMod": 25}
}`

const ItemGreavesJSON = `{
	"name": "Berserker's Greaves",
	"description": "<mainText>Gain Attack Speed and Move Speed</mainText>",
	"plaintext": "Enhances Move Speed and Attack Speed",
	"from": ["1001"],
	"gold": {"base": 500, "total": 1100, "sell": 770, "purchasable": true},
	"tags": ["Boots", "AttackSpeed"],
	"maps": {"11": true, "12": true},
	"stats": {"FlatMovementSpeedMod": 45, "PercentAttackSpeedMod": 0.35}
}`

const ItemKrakenJSON = `{
	"name": "Kraken Slayer",
	"description": "<mainText>Mythic passive: grants bonus Attack Speed</mainText>",
	"plaintext": "Every third attack deals bonus true damage",
	"from": ["3006"],
	"gold": {"base": 815, "total": 3400, "sell": 2380, "purchasable": true},
	"tags": ["CriticalStrike", "AttackSpeed"],
	"maps": {"11": true, "12": true},
	"stats": {"PercentAttackSpeedMod": 0.25}
}`

const RunePathDominationJSON = `{
	"id": 8100,
	"key": "Domination",
	"icon": "perk-images/Styles/7200_Domination.png",
	"name": "Domination",
	"slots": [
		{"runes": [
			{"id": 8112, "key": "Electrocute", "icon": "perk-images/Styles/Domination/Electrocute/Electrocute.png", "name": "Electrocute", "shortDesc": "Hitting a champion with 3 separate attacks or abilities deals bonus adaptive damage.", "longDesc": "Hitting a champion with 3 separate attacks or abilities within 3s deals bonus adaptive damage."},
			{"id": 8128, "key": "DarkHarvest", "icon": "perk-images/Styles/Domination/DarkHarvest/DarkHarvest.png", "name": "Dark Harvest", "shortDesc": "Damaging a low health champion harvests its soul.", "longDesc": "Damaging a champion below 50% health deals adaptive damage and harvests their soul."}
		]},
		{"runes": [
			{"id": 8126, "key": "CheapShot", "icon": "perk-images/Styles/Domination/CheapShot/CheapShot.png", "name": "Cheap Shot", "shortDesc": "Deal bonus true damage to impaired champions.", "longDesc": "Damaging champions with impaired movement or actions deals bonus true damage."},
			{"id": 8139, "key": "TasteOfBlood", "icon": "perk-images/Styles/Domination/TasteOfBlood/GreenTerror_TasteOfBlood.png", "name": "Taste of Blood", "shortDesc": "Heal when you damage an enemy champion.", "longDesc": "Heal when you damage an enemy champion."}
		]}
	]
}`

const RunePathPrecisionJSON = `{
	"id": 8000,
	"key": "Precision",
	"icon": "perk-images/Styles/7201_Precision.png",
	"name": "Precision",
	"slots": [
		{"runes": [
			{"id": 8005, "key": "PressTheAttack", "icon": "perk-images/Styles/Precision/PressTheAttack/PressTheAttack.png", "name": "Press the Attack", "shortDesc": "Hitting a champion 3 times makes them vulnerable.", "longDesc": "Hitting an enemy champion with 3 consecutive basic attacks deals bonus adaptive damage."},
			{"id": 8008, "key": "LethalTempo", "icon": "perk-images/Styles/Precision/LethalTempo/LethalTempoTemp.png", "name": "Lethal Tempo", "shortDesc": "Gain attack speed when attacking champions.", "longDesc": "Gain attack speed when you attack an enemy champion."}
		]},
		{"runes": [
			{"id": 9101, "key": "Overheal", "icon": "perk-images/Styles/Precision/Overheal.png", "name": "Overheal", "shortDesc": "Excess healing becomes a shield.", "longDesc": "Excess healing on you becomes a shield."}
		]}
	]
}`

const SpellFlashJSON = `{
	"id": "SummonerFlash",
	"key": "4",
	"name": "Flash",
	"description": "Teleports your champion a short distance toward your cursor's location.",
	"cooldown": [300],
	"cooldownBurn": "300",
	"summonerLevel": 7,
	"modes": ["CLASSIC", "ARAM", "URF"],
	"image": {"full": "SummonerFlash.png"}
}`

const SpellIgniteJSON = `{
	"id": "SummonerDot",
	"key": "14",
	"name": "Ignite",
	"description": "Ignites target enemy champion, dealing true damage over 5 seconds.",
	"cooldown": [180],
	"cooldownBurn": "180",
	"summonerLevel": 9,
	"modes": ["CLASSIC", "ARAM"],
	"image": {"full": "SummonerDot.png"}
}`
