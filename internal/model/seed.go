// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// SeedArticles returns the default content inserted when the articles table
// is empty at first load. IDs, dates and slugs are assigned at insert time.
func SeedArticles() []Article {
	return []Article{
		{
			Title:    "Sommet des chefs d'État africains à Addis-Abeba",
			Category: "Politique",
			Author:   "Jean Kabasele",
			Media: Media{
				Type: MediaImage,
				URL:  "https://picsum.photos/800/600?random=1",
			},
			Content: "<p>Les dirigeants africains se réunissent pour discuter de l'intégration régionale et des défis sécuritaires du continent. Cette rencontre historique vise à renforcer la coopération entre les nations africaines et à trouver des solutions communes aux problèmes de sécurité qui affectent le développement du continent.</p><h2>Un avenir prometteur</h2><p>Le plan de développement économique présenté lors du sommet a été accueilli avec enthousiasme par la plupart des participants. Plusieurs pays ont déjà annoncé leur intention de participer activement à ce projet ambitieux.</p>",
			Featured: true,
		},
		{
			Title:    "Croissance économique en hausse de 5,2% en Afrique subsaharienne",
			Category: "Économie",
			Author:   "Marie-Louise Diallo",
			Media: Media{
				Type: MediaImage,
				URL:  "https://picsum.photos/800/600?random=2",
			},
			Content: "<p>Malgré les défis mondiaux, la région affiche une résilience remarquable selon le FMI. Les projections économiques montrent une croissance soutenue dans plusieurs secteurs clés, notamment les technologies, l'agriculture et les industries extractives, contribuant ainsi au développement économique de la région.</p><h2>Les secteurs porteurs</h2><p>L'analyse détaillée montre que le secteur technologique connaît une croissance exponentielle, avec une augmentation de 12% des investissements dans les startups africaines. L'agriculture moderne et les énergies renouvelables sont également des moteurs importants de cette croissance.</p>",
			Featured: true,
		},
		{
			Title:    "Festival panafricain de cinéma : les lauréats dévoilés",
			Category: "Culture",
			Author:   "Samuel N'diaye",
			Media: Media{
				Type: MediaVideo,
				URL:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			},
			Content: "<p>Le cinéma africain célébré lors de la 15ème édition du festival qui s'est tenu à Ouagadougou. Des réalisateurs talentueux de tout le continent ont présenté leurs œuvres, mettant en lumière la diversité culturelle et les histoires captivantes de l'Afrique contemporaine.</p><h2>Des œuvres remarquables</h2><p>Le grand prix du festival a été décerné au film congolais 'Lumière sur Kin' qui raconte l'histoire touchante d'une famille à travers trois générations. Le film sénégalais 'Teranga' a remporté le prix du public pour sa représentation authentique de la vie rurale.</p>",
			Featured: false,
		},
		{
			Title:    "Rapport économique annuel 2025",
			Category: "Économie",
			Author:   "Ministère de l'Économie",
			Media: Media{
				Type:     MediaPDF,
				URL:      "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
				Filename: "rapport-economique-2025.pdf",
			},
			Content: "<p>Le ministère de l'Économie a publié son rapport annuel sur la situation économique du pays. Ce document complet analyse les performances des différents secteurs et présente les perspectives pour l'année à venir.</p><h2>Principales conclusions</h2><p>Le rapport met en lumière une croissance soutenue du PIB de 5,2%, une inflation maîtrisée à 3,8% et une augmentation des investissements étrangers de 12% par rapport à l'année précédente.</p>",
			Featured: false,
		},
	}
}
