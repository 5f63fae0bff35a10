package document

// Default returns the hard-coded bootstrap document. The store serves it (and
// persists it) the first time the content document is read, so the site
// renders complete bilingual copy before any admin ever opens the editor.
func Default() Document {
	return Document{
		"home": Page{
			"hero": Section{
				"logo":               "",
				"background":         "",
				"motto":              Bilingual("Always in flames!", "Sempre em chamas!"),
				"buttonLearn":        Bilingual("Learn More", "Saiba Mais"),
				"buttonAchievements": Bilingual("Our Achievements", "Nossas Conquistas"),
			},
			"about": Section{
				"badge": Bilingual("About Us", "Sobre Nós"),
				"title": Bilingual("Who We Are", "Quem Somos"),
				"description1": Bilingual(
					"ALPHIRE #26456 is a passionate FTC robotics team from São Paulo, Brazil. Founded on August 1, 2024, we bring together 15 dedicated students united by our love for robotics and innovation.",
					"ALPHIRE #26456 é uma equipe apaixonada de robótica FTC de São Paulo, Brasil. Fundada em 1º de agosto de 2024, reunimos 15 estudantes dedicados unidos pelo amor à robótica e inovação.",
				),
				"description2": Bilingual(
					"Our team embodies the spirit of gracious professionalism and collaborative competition. We believe in pushing boundaries, learning from challenges, and inspiring the next generation through STEM education.",
					"Nossa equipe incorpora o espírito de profissionalismo gracioso e competição colaborativa. Acreditamos em ultrapassar limites, aprender com desafios e inspirar a próxima geração através da educação STEM.",
				),
				"image": "",
			},
			"stats": Section{
				"competitions":      Bilingual("Competitions", "Competições"),
				"competitionsValue": "3",
				"awards":            Bilingual("Awards", "Prêmios"),
				"awardsValue":       "3",
				"members":           Bilingual("Members", "Membros"),
				"membersValue":      "15",
				"founded":           Bilingual("Founded", "Fundado"),
				"foundedValue":      "2024",
			},
			"achievements": Section{
				"badge": Bilingual("Achievements", "Conquistas"),
				"title": Bilingual("Our Achievements", "Nossas Conquistas"),
				"subtitle": Bilingual(
					"Celebrating our journey of excellence in robotics competitions",
					"Celebrando nossa jornada de excelência em competições de robótica",
				),
				"connectYear": "2024",
				"connect":     Bilingual("Team Attributes", "Atributos da Equipe"),
				"connectDesc": Bilingual(
					"Recognized for our outstanding community outreach efforts",
					"Reconhecidos por nossos esforços excepcionais de divulgação comunitária",
				),
				"winningYear": "2025",
				"winning":     Bilingual("Winning Alliance", "Aliança Vencedora"),
				"winningDesc": Bilingual(
					"Champions of the 2025 SP off-season tournament",
					"Campeões do torneio de 2025 SP off-season",
				),
				"controlYear": "2025",
				"control":     Bilingual("Control Award", "Prêmio Control"),
				"controlDesc": Bilingual(
					"Excellence in robot control and sensor integration",
					"Excelência em controle de robô e integração de sensores",
				),
			},
		},
		"aboutTeam": Page{
			"header": Section{
				"badge": Bilingual("Our Story", "Nossa História"),
				"title": Bilingual("About Team ALPHIRE", "Sobre a Equipe ALPHIRE"),
				"subtitle": Bilingual(
					"Inspiring the next generation through robotics, innovation, and gracious professionalism",
					"Inspirando a próxima geração através de robótica, inovação e profissionalismo gracioso",
				),
				"heroImage": "",
			},
			"schoolInfo": Section{
				"schoolLabel":   Bilingual("School", "Escola"),
				"schoolName":    "Instituto Tecnológico",
				"locationLabel": Bilingual("Location", "Localização"),
				"locationName":  "São Paulo, Brazil",
				"foundedLabel":  Bilingual("Founded", "Fundado"),
				"foundedYear":   "2024",
			},
			"mission": Section{
				"title": Bilingual("Our Mission", "Nossa Missão"),
				"text": Bilingual(
					"Team Alphire is dedicated to inspiring young minds through robotics and STEM education. We believe in the power of collaboration, innovation, and gracious professionalism. Our mission is to create a positive impact in our community while developing the skills and knowledge necessary to become future leaders in technology and engineering.",
					"O Time Alphire é dedicado a inspirar mentes jovens através da robótica e educação STEM. Acreditamos no poder da colaboração, inovação e profissionalismo gracioso. Nossa missão é criar um impacto positivo em nossa comunidade enquanto desenvolvemos as habilidades e conhecimentos necessários para nos tornarmos futuros líderes em tecnologia e engenharia.",
				),
			},
			"areas": Section{
				"title":       Bilingual("Our Areas of Focus", "Nossas Áreas de Foco"),
				"engineering": Bilingual("Engineering", "Engenharia"),
				"engineeringDesc": Bilingual(
					"Mechanical design, CAD modeling, and robot construction",
					"Design mecânico, modelagem CAD e construção do robô",
				),
				"programming": Bilingual("Programming", "Programação"),
				"programmingDesc": Bilingual(
					"Autonomous code, teleoperation, and vision systems",
					"Código autônomo, teleoperação e sistemas de visão",
				),
				"business": Bilingual("Business", "Negócios"),
				"businessDesc": Bilingual(
					"Sponsorship, marketing, and team management",
					"Patrocínio, marketing e gestão da equipe",
				),
				"outreach": Bilingual("Outreach", "Divulgação"),
				"outreachDesc": Bilingual(
					"Community engagement and STEM education",
					"Engajamento comunitário e educação STEM",
				),
			},
			"timeline": Section{
				"title":       Bilingual("Our Journey", "Nossa Jornada"),
				"event1Year":  "2024",
				"event1Title": Bilingual("Team Founded", "Fundação da Equipe"),
				"event1Desc": Bilingual(
					"Started with 15 passionate students on August 1st",
					"Começamos com 15 estudantes apaixonados em 1º de agosto",
				),
				"event2Year":  "2024",
				"event2Title": Bilingual("Team Attributes", "Atributos da Equipe"),
				"event2Desc": Bilingual(
					"Won Team Attributes in December",
					"Ganhamos Atributos da Equipe em dezembro",
				),
				"event3Year":  "2025",
				"event3Title": Bilingual("Winning Alliance", "Aliança Vencedora"),
				"event3Desc": Bilingual(
					"Part of Winning Alliance at SP off-season",
					"Parte da Aliança Vencedora no torneio de SP",
				),
				"event4Year":  "2025",
				"event4Title": Bilingual("Control Award", "Prêmio Control"),
				"event4Desc": Bilingual(
					"Won Control Award at SP off-season",
					"Ganhamos o Prêmio Control no torneio de SP",
				),
			},
			"values": Section{
				"title":    Bilingual("Our Values", "Nossos Valores"),
				"teamwork": Bilingual("Teamwork", "Trabalho em Equipe"),
				"teamworkDesc": Bilingual(
					"We succeed together through collaboration",
					"Temos sucesso juntos através da colaboração",
				),
				"innovation": Bilingual("Innovation", "Inovação"),
				"innovationDesc": Bilingual(
					"We push boundaries with creative solutions",
					"Ultrapassamos limites com soluções criativas",
				),
				"community": Bilingual("Community", "Comunidade"),
				"communityDesc": Bilingual(
					"We give back and inspire others",
					"Retribuímos e inspiramos outros",
				),
			},
		},
		"sponsors": Page{
			"header": Section{
				"badge": Bilingual("Thank You", "Obrigado"),
				"title": Bilingual("Our Sponsors", "Nossos Patrocinadores"),
				"subtitle": Bilingual(
					"We are grateful for the support of our amazing sponsors who make our journey possible",
					"Somos gratos pelo apoio de nossos incríveis patrocinadores que tornam nossa jornada possível",
				),
			},
			"mainSponsors": Section{
				"title": Bilingual("Our Main Sponsors", "Nossos Principais Patrocinadores"),
			},
			"sponsor1": Section{
				"name":        "Parker Hannifin",
				"description": Bilingual("Motion and control technologies", "Tecnologias de movimento e controle"),
				"url":         "https://www.parker.com/br/pt/home.html",
				"logo":        "",
			},
			"sponsor2": Section{
				"name":        "Dassault Systèmes",
				"description": Bilingual("3D design and engineering software", "Software de design 3D e engenharia"),
				"url":         "https://www.3ds.com",
				"logo":        "",
			},
			"sponsor3": Section{
				"name":        "Packwind",
				"description": Bilingual("Packaging and logistics solutions", "Soluções de embalagem e logística"),
				"url":         "https://packwind.com.br",
				"logo":        "",
			},
			"sponsor4": Section{
				"name":        "Alpha Lumen School",
				"description": Bilingual("Educational institution", "Instituição educacional"),
				"url":         "https://www.alphalumen.org.br",
				"logo":        "",
			},
			"cta": Section{
				"title": Bilingual("Become a Sponsor", "Torne-se um Patrocinador"),
				"subtitle": Bilingual(
					"Join us in inspiring the next generation of engineers and innovators",
					"Junte-se a nós para inspirar a próxima geração de engenheiros e inovadores",
				),
				"becomeButton":   Bilingual("Become a Sponsor", "Torne-se um Patrocinador"),
				"downloadButton": Bilingual("Download Sponsorship Package", "Baixar Pacote de Patrocínio"),
			},
		},
		"social": Page{
			"header": Section{
				"badge": Bilingual("Connect", "Conecte-se"),
				"title": Bilingual("Social Media", "Redes Sociais"),
				"subtitle": Bilingual(
					"Follow our journey and stay updated with our latest achievements",
					"Acompanhe nossa jornada e fique atualizado com nossas últimas conquistas",
				),
			},
			"noPosts": Section{
				"en": "No posts available at the moment. Check back soon!",
				"pt": "Nenhuma postagem disponível no momento. Volte em breve!",
			},
		},
		"robots": Page{
			"header": Section{
				"badge": Bilingual("Our Robots", "Nossos Robôs"),
				"title": Bilingual("Robot Database", "Base de Dados de Robôs"),
				"subtitle": Bilingual(
					"Explore our collection of competitive robots and their achievements",
					"Explore nossa coleção de robôs competitivos e suas conquistas",
				),
			},
			"search": Section{
				"placeholder":  Bilingual("Search robots...", "Buscar robôs..."),
				"filterSeason": Bilingual("Filter by Season", "Filtrar por Temporada"),
				"allSeasons":   Bilingual("All Seasons", "Todas as Temporadas"),
			},
			"noResults": Section{
				"en": "No robots found. Try adjusting your search.",
				"pt": "Nenhum robô encontrado. Tente ajustar sua busca.",
			},
		},
		"materials": Page{
			"header": Section{
				"badge": Bilingual("Resources", "Recursos"),
				"title": Bilingual("Educational Materials", "Materiais Educacionais"),
				"subtitle": Bilingual(
					"Free resources to help you learn robotics and STEM",
					"Recursos gratuitos para ajudá-lo a aprender robótica e STEM",
				),
			},
			"categories": Section{
				"all":         Bilingual("All Materials", "Todos os Materiais"),
				"programming": Bilingual("Programming", "Programação"),
				"cad":         Bilingual("CAD Design", "Design CAD"),
				"engineering": Bilingual("Engineering", "Engenharia"),
				"business":    Bilingual("Business", "Negócios"),
			},
			"downloadButton": Section{
				"en": "Download",
				"pt": "Baixar",
			},
			"downloads": Section{
				"en": "downloads",
				"pt": "downloads",
			},
		},
		"projects": Page{
			"header": Section{
				"badge": Bilingual("Innovation", "Inovação"),
				"title": Bilingual("Our Projects", "Nossos Projetos"),
				"subtitle": Bilingual(
					"Exploring technology and making an impact in our community",
					"Explorando tecnologia e causando impacto em nossa comunidade",
				),
			},
			"arc": Section{
				"name": Bilingual("Advanced Robotics Classes", "Aulas Avançadas de Robótica"),
				"description": Bilingual(
					"Teaching robotics fundamentals to students in our community through hands-on workshops and training sessions.",
					"Ensinando fundamentos de robótica para estudantes em nossa comunidade através de workshops práticos e sessões de treinamento.",
				),
				"image":  "",
				"status": Bilingual("Active", "Ativo"),
			},
			"sgof": Section{
				"name": Bilingual("STEM Girls of the Future", "Meninas STEM do Futuro"),
				"description": Bilingual(
					"Empowering young girls to pursue careers in STEM through mentorship, workshops, and inspiring role models.",
					"Capacitando jovens garotas para seguir carreiras em STEM através de mentoria, workshops e modelos inspiradores.",
				),
				"image":  "",
				"status": Bilingual("Active", "Ativo"),
			},
			"flames": Section{
				"name": Bilingual("Flames of Knowledge", "Chamas do Conhecimento"),
				"description": Bilingual(
					"Creating free educational content and resources to help teams learn programming, CAD design, and engineering.",
					"Criando conteúdo educacional gratuito e recursos para ajudar equipes a aprender programação, design CAD e engenharia.",
				),
				"image":  "",
				"status": Bilingual("Completed", "Concluído"),
			},
			"cta": Section{
				"title": Bilingual("Want to Collaborate?", "Quer Colaborar?"),
				"description": Bilingual(
					"We're always looking for opportunities to share our knowledge and work with other teams and organizations. Get in touch if you'd like to collaborate on a project!",
					"Estamos sempre procurando oportunidades para compartilhar nosso conhecimento e trabalhar com outras equipes e organizações. Entre em contato se quiser colaborar em um projeto!",
				),
				"buttonText": Bilingual("Contact Us", "Entre em Contato"),
			},
		},
		"aboutWebsite": Page{
			"header": Section{
				"badge": Bilingual("Technology", "Tecnologia"),
				"title": Bilingual("About This Website", "Sobre Este Site"),
				"subtitle": Bilingual(
					"Built with passion using modern web technologies",
					"Construído com paixão usando tecnologias web modernas",
				),
			},
			"intro": Section{
				"title": Bilingual("Our Digital Home", "Nosso Lar Digital"),
				"description": Bilingual(
					"This website was designed and developed by our team to showcase our journey in robotics. It serves as a hub for our achievements, resources, and community engagement.",
					"Este site foi projetado e desenvolvido por nossa equipe para mostrar nossa jornada na robótica. Serve como um centro para nossas conquistas, recursos e engajamento comunitário.",
				),
			},
			"techStack": Section{
				"title":          Bilingual("Technology Stack", "Stack Tecnológico"),
				"react":          Bilingual("React", "React"),
				"reactDesc":      Bilingual("Modern UI framework", "Framework moderno de UI"),
				"tailwind":       Bilingual("Tailwind CSS", "Tailwind CSS"),
				"tailwindDesc":   Bilingual("Utility-first styling", "Estilização utility-first"),
				"typescript":     Bilingual("TypeScript", "TypeScript"),
				"typescriptDesc": Bilingual("Type-safe code", "Código type-safe"),
				"supabase":       Bilingual("Supabase", "Supabase"),
				"supabaseDesc":   Bilingual("Backend & database", "Backend e banco de dados"),
			},
			"features": Section{
				"title":      Bilingual("Features", "Recursos"),
				"responsive": Bilingual("Responsive Design", "Design Responsivo"),
				"responsiveDesc": Bilingual(
					"Works perfectly on all devices",
					"Funciona perfeitamente em todos os dispositivos",
				),
				"bilingual": Bilingual("Bilingual Support", "Suporte Bilíngue"),
				"bilingualDesc": Bilingual(
					"English and Portuguese available",
					"Inglês e Português disponíveis",
				),
				"darkMode": Bilingual("Dark Mode", "Modo Escuro"),
				"darkModeDesc": Bilingual(
					"Eye-friendly viewing experience",
					"Experiência de visualização agradável",
				),
				"cms": Bilingual("Content Management", "Gestão de Conteúdo"),
				"cmsDesc": Bilingual(
					"Easy admin panel for updates",
					"Painel admin fácil para atualizações",
				),
			},
		},
		"navigation": Page{
			"home":         Section{"en": "Home", "pt": "Início"},
			"robots":       Section{"en": "Robots", "pt": "Robôs"},
			"social":       Section{"en": "Social", "pt": "Social"},
			"sponsors":     Section{"en": "Sponsors", "pt": "Patrocinadores"},
			"materials":    Section{"en": "Materials", "pt": "Materiais"},
			"projects":     Section{"en": "Projects", "pt": "Projetos"},
			"aboutTeam":    Section{"en": "About Team", "pt": "Sobre a Equipe"},
			"aboutWebsite": Section{"en": "About Website", "pt": "Sobre o Site"},
			"admin":        Section{"en": "Admin", "pt": "Admin"},
		},
		"footer": Page{
			"description": Section{
				"en": "ALPHIRE #26456 - Inspiring the next generation through robotics and innovation",
				"pt": "ALPHIRE #26456 - Inspirando a próxima geração através de robótica e inovação",
			},
			"quickLinks": Section{"en": "Quick Links", "pt": "Links Rápidos"},
			"followUs":   Section{"en": "Follow Us", "pt": "Siga-nos"},
			"copyright": Section{
				"en": "© 2024 Team ALPHIRE. All rights reserved.",
				"pt": "© 2024 Equipe ALPHIRE. Todos os direitos reservados.",
			},
		},
	}
}
