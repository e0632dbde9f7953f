package catalog

import "github.com/ppiankov/tkdgloss/internal/model"

// Category names in declaration order. Segmentation attributes a spelling
// declared in several categories to the first one listed here.
const (
	Stances            = "Stances"
	Actions            = "Actions"
	Directions         = "Directions"
	BodyParts          = "BodyParts"
	HandParts          = "HandParts"
	FootParts          = "FootParts"
	BlockingTechniques = "BlockingTechniques"
	KickTypes          = "KickTypes"
	MovementTypes      = "MovementTypes"
	DirectionModifiers = "DirectionModifiers"
)

// builtin is the glossary as shipped. Term order inside a category is the
// enumeration order used everywhere.
var builtin = []Category{
	{
		Name: Stances,
		terms: []model.Term{
			{Canonical: "Apgubi", Label: "Base frontal", Description: "Pernas afastadas, com a frente dobrada e peso à frente"},
			{Canonical: "Dwitgubi", Label: "Base para trás", Description: "Peso do corpo principalmente na perna de trás, postura recuada"},
			{Canonical: "Juchum Seogi", Label: "Posição de cavaleiro", Description: "Posição com as pernas abertas e joelhos flexionados"},
			{Canonical: "Narani Seogi", Label: "Base paralela", Description: "Pés alinhados paralelamente à largura dos ombros"},
			{Canonical: "Moa Seogi", Label: "Base fechada", Description: "Pés juntos, tocando um no outro"},
			{Canonical: "Beom Seogi", Label: "Base de tigre", Description: "Peso do corpo quase todo na perna de trás, frente levemente apoiada"},
			{Canonical: "Kkoa Seogi", Label: "Base cruzada", Description: "Uma perna cruza sobre a outra, pés próximos"},
			{Canonical: "Dwit Kkoa Seogi", Label: "Base cruzada para trás", Description: "Uma perna cruza sobre a outra, pés próximos, com a perna de trás apoiada no chão"},
			{Canonical: "Ap Kkoa Seogi", Label: "Base cruzada para frente", Description: "Uma perna cruza sobre a outra, pés próximos, com a perna de frente apoiada no chão"},
			{Canonical: "Hakdari Seogi", Label: "Base da garça", Description: "Equilíbrio sobre uma perna, outra perna flexionada com a ponta do pé encostando no joelho"},
			{Canonical: "Yeop Seogi", Label: "Posição lateral", Description: "Postura onde o praticante posiciona o corpo de lado em relação ao adversário, usada para maximizar o alcance e a força em chutes laterais como o Yeop Chagi."},
		},
	},
	{
		Name: Actions,
		terms: []model.Term{
			{Canonical: "Chagi", Label: "Chute", Description: "Movimento de ataque usando a perna ou o pé"},
			{Canonical: "Makgi", Label: "Bloqueio", Description: "Ação defensiva para interceptar um ataque"},
			{Canonical: "Chigi", Label: "Bater", Description: "Movimento de ataque usando mãos, braços ou cotovelos de forma lateral ou circular"},
			{Canonical: "Jireugi", Label: "Soco", Description: "Ataque direto e reto com o punho fechado"},
			{Canonical: "Jjireugi", Label: "Perfuração", Description: "Ataque de perfuração, geralmente com ponta dos dedos ou mão em lança"},
			{Canonical: "Danggyeo", Label: "Puxar", Description: "Ação de puxar o adversário, usada em técnicas de controle ou defesa"},
			{Canonical: "Jitjjiki", Label: "Esmagar", Description: "Ação de ataque que pressiona ou esmaga, geralmente com o pé ou mão"},
		},
	},
	{
		Name: Directions,
		terms: []model.Term{
			{Canonical: "Ollyeo", Label: "Para cima", Description: "Direção para cima"},
			{Canonical: "Naeryeo", Label: "Para baixo", Description: "Direção para baixo"},
			{Canonical: "Ap", Label: "Frente", Description: "Direção para frente"},
			{Canonical: "Dwit", Label: "Trás", Description: "Direção para trás"},
			{Canonical: "Yeop", Label: "Lado", Description: "Direção para o lado"},
		},
	},
	{
		Name: BodyParts,
		terms: []model.Term{
			{Canonical: "Palmok", Label: "Antebraço", Description: "Parte do antebraço usada para bloqueios e defesas"},
			{Canonical: "Jumeok", Label: "Punho", Description: "Mão fechada usada para socos"},
			{Canonical: "Dujumeok", Label: "Punho duplo", Description: "Punho com as duas mãos fechadas, usado para socos duplos"},
			{Canonical: "Sonnal", Label: "Faca da mão", Description: "Borda externa da mão aberta usada para ataques e defesas"},
			{Canonical: "Sonkut", Label: "Ponta dos dedos", Description: "Ponta dos dedos usada para ataques de perfuração"},
			{Canonical: "Palgup", Label: "Cotovelo", Description: "Usado para ataques de curta distância"},
			{Canonical: "Mureup", Label: "Joelho", Description: "Usado para ataques em curta distância com a perna"},
			{Canonical: "Momtong", Label: "Tronco", Description: "Região do torso usada como área-alvo ou para suportar técnicas"},
			{Canonical: "Eolgul", Label: "Rosto", Description: "Região do rosto, alvo de ataques e área a ser protegida em bloqueios altos."},
		},
	},
	{
		Name: HandParts,
		terms: []model.Term{
			{Canonical: "Batanson", Label: "Palma da mão", Description: "Centro da mão usado para bloqueios e ataques"},
			{Canonical: "Pyeonson", Label: "Mão estendida", Description: "Mão com dedos abertos e estendidos"},
			{Canonical: "Sonnal", Label: "Faca da mão", Description: "Borda externa da mão (lado do dedo mínimo) usada para golpes cortantes"},
			{Canonical: "Sonkkeut", Label: "Pontas dos dedos", Description: "Pontas dos dedos usadas para ataques de perfuração (tipo 'spearfinger')"},
			{Canonical: "Deungjumeok", Label: "Costas do punho", Description: "Parte superior do punho usada em bloqueios e ataques (ex: Deungjumeok Ap Chigi)"},
			{Canonical: "Mejumeok", Label: "Base do punho", Description: "Parte inferior do punho, usada como martelo em golpes para baixo (Mejumeok Naeryo Chigi)"},
			{Canonical: "Sonbadak", Label: "Sola da mão", Description: "A parte interna da mão, como a palma usada para empurrar (semelhante a Batanson mas mais geral)"},
			{Canonical: "Ageumson", Label: "Mão em arco (Arc Hand)", Description: "Forma técnica onde a mão está aberta, com o polegar e o dedo indicador afastados e os demais dedos levemente curvados para dentro, formando um arco ou meia-lua. Utilizado em ataques perfurantes e técnicas específicas de bloqueio."},
			{Canonical: "Deung", Label: "Costas", Description: "Geralmente se refere à parte traseira da mão ou punho, como em Deungjumeok (costas do punho)."},
			{Canonical: "Deungpalmok", Label: "Costas do pulso", Description: "Parte superior do pulso utilizada em certas técnicas de bloqueio ou ataque. Corresponde à superfície traseira do punho quando um soco é desferido."},
			{Canonical: "Pyeonjumeok", Label: "Punho semi-serrado", Description: "Área da segunda falange (articulação média) dos dedos, usada quando os nós dos dedos são estendidos ou achatados em relação à forma de um punho fechado. Também chamado de 'Half-clenched Fist'."},
			{Canonical: "Pyeonsonkkeut", Label: "Pontas dos dedos achatadas", Description: "Técnica em que a ponta do dedo médio é levemente curvada para alinhar-se com os dedos indicador e anelar, com todos os dedos pressionados juntos. Também conhecida como 'Flat Fingertips'."},
		},
	},
	{
		Name: FootParts,
		terms: []model.Term{
			{Canonical: "Baldeung", Label: "Empeine do pé", Description: "Parte superior do pé usada para chutar (por exemplo, Dollyeo Chagi)"},
			{Canonical: "Balbadak", Label: "Sola do pé", Description: "Parte inferior do pé usada para empurrões ou chutes frontais (Push Kick)"},
			{Canonical: "Balnal", Label: "Faca do pé", Description: "Borda externa do pé usada em chutes laterais (Yop Chagi)"},
			{Canonical: "Balnaldeung", Label: "Faca interna do pé", Description: "Borda interna do pé usada em técnicas específicas de corte"},
			{Canonical: "Apchuk", Label: "Bola do pé", Description: "Parte frontal do pé (parte logo abaixo dos dedos) usada em chutes frontais (Ap Chagi)"},
			{Canonical: "Dwichuk", Label: "Calcanhar", Description: "Parte traseira do pé, usada em chutes para trás (Dwi Chagi)"},
		},
	},
	{
		Name: BlockingTechniques,
		terms: []model.Term{
			{Canonical: "Eotgeoreo", Label: "Cruzado", Description: "Movimento onde os braços se cruzam para bloquear ataques, aumentando a força e a cobertura da defesa."},
		},
	},
	{
		Name: KickTypes,
		terms: []model.Term{
			{Canonical: "Apbal", Label: "Pé da frente", Description: "Uso do pé da frente para executar um chute, geralmente mais rápido e para ataques rápidos de curta distância."},
			{Canonical: "Dwitbal", Label: "Pé de trás", Description: "Uso do pé de trás para executar o chute, normalmente mais potente e com maior alcance."},
			{Canonical: "Balbucheo", Label: "Impulsionar o pé", Description: "Movimento de impulso rápido com o pé, usado para aumentar a velocidade e força do chute, aproveitando o balanço do corpo."},
			{Canonical: "Mireo", Label: "Empurrar", Description: "Movimento de empurrar com a perna, utilizado para chutes como o Mireo Chagi, focando em afastar o adversário com a sola do pé."},
			{Canonical: "Dubaldangsang", Label: "Dois pés simultâneos", Description: "Uso simultâneo dos dois pés em saltos ou chutes, como em técnicas de chute duplo (por exemplo, Dubaldangsang Twio Chagi)."},
			{Canonical: "Goro", Label: "Arrastar/Rastejar", Description: "Movimento de arrastar o pé no chão durante a execução do chute, usado para criar impulso ou disfarçar a preparação do golpe."},
			{Canonical: "Dubal", Label: "Dois pés", Description: "Indica o uso de ambos os pés simultaneamente em uma técnica, como em Dubal Ddangseong Chagi (chute com os dois pés)."},
		},
	},
	{
		Name: MovementTypes,
		terms: []model.Term{
			{Canonical: "Dollyeo", Label: "Girar", Description: "Movimento circular ou rotatório"},
			{Canonical: "Huryeo", Label: "Chicoteado", Description: "Movimento rápido e curvado como um chicote"},
			{Canonical: "Biteureo", Label: "Torcido", Description: "Movimento de ataque com torção"},
			{Canonical: "Nulleo", Label: "Empurrado para baixo", Description: "Movimento descendente puxando ou empurrando"},
			{Canonical: "Jeocheo", Label: "Empurrado para cima", Description: "Movimento ascendente de empurrar para cima"},
			{Canonical: "Hecheo", Label: "Separar", Description: "Movimento de abrir ou separar"},
			{Canonical: "Geodeup", Label: "Repetido", Description: "Movimento duplo ou repetido"},
			{Canonical: "Santeul", Label: "Montanha", Description: "Movimento em arco elevado como uma montanha"},
			{Canonical: "Geodeureo", Label: "Assistido", Description: "Usado para indicar que uma técnica é assistida ou reforçada por outra mão, como em Geodeureo Makgi (bloqueio assistido)."},
			{Canonical: "Modum", Label: "Unido", Description: "Usado em posturas ou movimentos onde as pernas ou mãos estão unidas, como em Modum Seogi (posição com pés juntos)."},
			{Canonical: "Geumgang", Label: "Diamante / Forte como diamante", Description: "Nome de um Poomsae avançado (2º Dan) e conceito que representa força inquebrável, estabilidade e grandeza."},
			{Canonical: "Jasumbal", Label: "Perna da frente", Description: "Indica que a técnica é executada com a perna da frente, sem troca de base."},
			{Canonical: "Balbucheo", Label: "Chute com avanço", Description: "Movimento em que o praticante avança com a perna de trás enquanto executa o chute com a perna da frente, ganhando impulso e cobrindo distância."},
			{Canonical: "Momdora", Label: "Rotação do corpo", Description: "Indica que a técnica envolve uma rotação do tronco ou do corpo para gerar mais força ou mudar de direção."},
			{Canonical: "Dwidora", Label: "Giro reverso", Description: "Rotação completa para trás usada para gerar força em técnicas como chutes giratórios ou ataques surpresa."},
			{Canonical: "Jepipum", Label: "Técnica da andorinha", Description: "Movimento estilizado, frequentemente usado em formas (poomsae) ou demonstrações"},
			{Canonical: "Ttwieo", Label: "Saltar", Description: "Modificador que indica a execução de um movimento com salto, como em Ttwieo Chagi"},
			{Canonical: "Sewo", Label: "Vertical", Description: "Indica que a técnica é realizada em direção vertical, geralmente de cima para baixo."},
			{Canonical: "Eopeo", Label: "Horizontal", Description: "Indica que a técnica é realizada na direção horizontal, geralmente paralela ao chão."},
			{Canonical: "Bal Bakuda", Label: "Trocar o pé", Description: "Ação de alternar a perna da frente com a de trás, trocando a base"},
			{Canonical: "Dolgae", Label: "Redemoinho", Description: "Movimento giratório contínuo, usado em treinos acrobáticos ou para descrever giros intensos"},
			{Canonical: "Gawi", Label: "Tesoura", Description: "Movimento com membros em oposição, semelhante ao fechamento de uma tesoura"},
		},
	},
	{
		Name: DirectionModifiers,
		terms: []model.Term{
			{Canonical: "Bakkat", Label: "Externo", Description: "Indica movimento de fora para dentro"},
			{Canonical: "An", Label: "Interno", Description: "Indica movimento de dentro para fora"},
			{Canonical: "Oesanteul", Label: "Arco externo", Description: "Movimento em forma de arco para fora"},
			{Canonical: "Mom Dora", Label: "Vire o corpo", Description: "Comando usado para girar o corpo, geralmente 180°, em treinos e poomsae"},
			{Canonical: "Dwit Dora", Label: "Vire-se para trás", Description: "Comando para girar o corpo 180° para trás no lugar"},
		},
	},
}
