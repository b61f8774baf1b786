package formation

import "fmt"

// Cypher text for every query shape the engine issues. Variable-length path
// bounds cannot be parameterized in Cypher, so functions interpolate the
// radius; everything else travels as query parameters.
//
// Schema:
//
//	(Author {Author_ID, Author_Name, skills})
//	(Paper {Paper_ID, Paper_Title, Combined_Keywords, n_Citation, Years_Passed})
//	(Author)-[:WRITTEN]->(Paper)
//	(Author)-[:WORKS_IN]->(Department|Organization)
//	(Organization)-[:INCLUDES]->(Department)

// querySeedSufficientConnections finds seed authors matching the first
// keyword through their own skills or an authored paper's keyword set, with
// enough reachable co-authors to plausibly anchor a team. Ordered by overall
// structural degree.
func querySeedSufficientConnections(maxDistance int) string {
	return fmt.Sprintf(`
		MATCH (a:Author)-[:WRITTEN]->(p:Paper)
		WHERE any(kw IN split(p.Combined_Keywords, ', ') WHERE toLower(kw) CONTAINS toLower($first_keyword))
		OR (a.skills IS NOT NULL AND any(skill IN split(a.skills, ', ') WHERE toLower(skill) CONTAINS toLower($first_keyword)))

		WITH a, SIZE([()--(a) | 1]) AS degree

		MATCH (a)-[*1..%d]-(conn:Author)
		WHERE conn <> a

		WITH a, degree, COUNT(DISTINCT conn) AS connection_count
		WHERE connection_count >= $min_connections

		RETURN a.Author_ID AS author_id,
		       a.Author_Name AS author_name,
		       degree,
		       a.skills AS skills,
		       connection_count
		ORDER BY degree DESC
		LIMIT $limit
	`, maxDistance)
}

// querySeedWrittenConnections is the co-authorship-only variant: both the
// degree and the reachability test count WRITTEN edges exclusively.
func querySeedWrittenConnections(maxDistance int) string {
	return fmt.Sprintf(`
		MATCH (a:Author)-[:WRITTEN]->(p:Paper)
		WHERE any(kw IN split(p.Combined_Keywords, ', ') WHERE toLower(kw) CONTAINS toLower($first_keyword))
		OR (a.skills IS NOT NULL AND any(skill IN split(a.skills, ', ') WHERE toLower(skill) CONTAINS toLower($first_keyword)))

		WITH a, SIZE([(a)-[:WRITTEN]-() | 1]) AS degree

		MATCH (a)-[:WRITTEN*1..%d]-(conn:Author)
		WHERE conn <> a

		WITH a, degree, COUNT(DISTINCT conn) AS connection_count
		WHERE connection_count >= $min_connections

		RETURN a.Author_ID AS author_id,
		       a.Author_Name AS author_name,
		       degree,
		       a.skills AS skills,
		       connection_count
		ORDER BY degree DESC
		LIMIT $limit
	`, maxDistance)
}

// querySeedHighCitation ranks seed candidates by aggregate citation mass of
// keyword-matched papers and ignores connectivity entirely.
const querySeedHighCitation = `
	MATCH (author:Author)
	WHERE author.skills IS NOT NULL
	      AND any(skill IN split(author.skills, ', ') WHERE toLower(skill) CONTAINS toLower($skill))

	OPTIONAL MATCH (author)-[:WRITTEN]->(paper:Paper)
	WHERE any(kw IN split(paper.Combined_Keywords, ', ') WHERE toLower(kw) CONTAINS toLower($skill))

	WITH author,
	     SUM(coalesce(paper.n_Citation, 0)) AS skill_citations

	RETURN author.Author_ID AS author_id,
	       author.Author_Name AS author_name,
	       author.skills AS skills,
	       skill_citations AS citation_count
	ORDER BY skill_citations DESC
	LIMIT $limit
`

// queryFindHighestDegree finds the closest keyword-matching author over any
// edge type, breaking distance ties by overall degree.
func queryFindHighestDegree(maxDistance int) string {
	return fmt.Sprintf(`
		MATCH (team_member:Author)
		WHERE team_member.Author_ID IN $team_ids

		WITH COLLECT(team_member) AS team

		UNWIND team AS node
		MATCH path = (node)-[*1..%d]-(a:Author)

		WHERE (a.skills IS NOT NULL AND any(skill IN split(a.skills, ', ') WHERE toLower(skill) CONTAINS toLower($keyword)))
		  AND NOT a.Author_ID IN $team_ids
		  AND NOT a.Author_ID IN $excluded_ids

		WITH a,
		     MIN(length(path)) AS distance,
		     SIZE([()--(a) | 1]) AS degree

		ORDER BY distance ASC, degree DESC
		LIMIT 1

		RETURN a.Author_ID AS author_id,
		       a.Author_Name AS author_name,
		       degree,
		       distance,
		       a.skills AS skills
	`, maxDistance)
}

// queryFindWrittenConnection restricts the traversal to WRITTEN edges.
func queryFindWrittenConnection(maxDistance int) string {
	return fmt.Sprintf(`
		MATCH (team_member:Author)
		WHERE team_member.Author_ID IN $team_ids

		WITH COLLECT(team_member) AS team

		UNWIND team AS node
		MATCH path = (node)-[:WRITTEN*1..%d]-(a:Author)

		WHERE (a.skills IS NOT NULL AND any(skill IN split(a.skills, ', ') WHERE toLower(skill) CONTAINS toLower($keyword)))
		  AND NOT a.Author_ID IN $team_ids
		  AND NOT a.Author_ID IN $excluded_ids

		WITH a,
		     MIN(length(path)) AS distance,
		     SIZE([()--(a) | 1]) AS degree

		ORDER BY distance ASC, degree DESC
		LIMIT 1

		RETURN a.Author_ID AS author_id,
		       a.Author_Name AS author_name,
		       degree,
		       distance,
		       a.skills AS skills
	`, maxDistance)
}

// queryFindOrganizationalConnection traverses affiliation and containment
// edges only, ranking by distance, affiliation degree, then team coverage.
func queryFindOrganizationalConnection(maxDistance int) string {
	return fmt.Sprintf(`
		MATCH (team_member:Author)
		WHERE team_member.Author_ID IN $team_ids

		WITH COLLECT(team_member) AS team

		UNWIND team AS node

		MATCH path = (node)-[:WORKS_IN|INCLUDES*1..%d]-(candidate:Author)
		WHERE any(rel IN relationships(path) WHERE type(rel) IN ['WORKS_IN', 'INCLUDES'])
		  AND (candidate.skills IS NOT NULL AND any(skill IN split(candidate.skills, ', ') WHERE toLower(skill) CONTAINS toLower($keyword)))
		  AND NOT candidate.Author_ID IN $team_ids
		  AND NOT candidate.Author_ID IN $excluded_ids

		WITH candidate, node, MIN(length(path)) AS path_length,
		     SIZE([(candidate)-[:WORKS_IN]->() | 1]) as org_degree

		WITH candidate, MIN(path_length) AS min_distance,
		     COUNT(node) AS connected_to_members,
		     org_degree

		ORDER BY min_distance ASC, org_degree DESC, connected_to_members DESC
		LIMIT 1

		RETURN candidate.Author_ID AS author_id,
		       candidate.Author_Name AS author_name,
		       org_degree AS degree,
		       min_distance AS distance,
		       connected_to_members,
		       candidate.skills AS skills
	`, maxDistance)
}

// queryFindPrioritizedConnection tiers the search: direct co-authorship
// first, then affiliation paths, then any path within maxDistance. The
// reported distance is the tier constant (2, 3, maxDistance), not a measured
// shortest-path length.
func queryFindPrioritizedConnection(maxDistance int) string {
	return fmt.Sprintf(`
		MATCH (team_member:Author)
		WHERE team_member.Author_ID IN $team_ids

		WITH COLLECT(team_member) AS team

		UNWIND team AS node

		OPTIONAL MATCH (node)-[:WRITTEN]-(:Paper)-[:WRITTEN]-(a:Author)
		WHERE (a.skills IS NOT NULL AND any(skill IN split(a.skills, ', ') WHERE toLower(skill) CONTAINS toLower($keyword)))
		  AND NOT a.Author_ID IN $team_ids
		  AND NOT a.Author_ID IN $excluded_ids

		OPTIONAL MATCH (node)-[:WORKS_IN|INCLUDES*1..4]-(a2:Author)
		WHERE (a2.skills IS NOT NULL AND any(skill IN split(a2.skills, ', ') WHERE toLower(skill) CONTAINS toLower($keyword)))
		  AND NOT a2.Author_ID IN $team_ids
		  AND NOT a2.Author_ID IN $excluded_ids
		  AND a IS NULL

		OPTIONAL MATCH (node)-[*1..%d]-(a3:Author)
		WHERE (a3.skills IS NOT NULL AND any(skill IN split(a3.skills, ', ') WHERE toLower(skill) CONTAINS toLower($keyword)))
		  AND NOT a3.Author_ID IN $team_ids
		  AND NOT a3.Author_ID IN $excluded_ids
		  AND a IS NULL AND a2 IS NULL

		WITH COALESCE(a, a2, a3) AS author,
		     CASE WHEN a IS NOT NULL THEN 'WRITTEN'
		          WHEN a2 IS NOT NULL THEN 'WORKS_IN'
		          ELSE 'ANY_PATH' END AS connection_type,
		     CASE WHEN a IS NOT NULL THEN 2
		          WHEN a2 IS NOT NULL THEN 3
		          ELSE %d END AS distance

		WHERE author IS NOT NULL

		WITH author,
		     MIN(distance) AS distance,
		     SIZE([()--(author) | 1]) AS degree,
		     connection_type

		ORDER BY connection_type ASC, distance ASC, degree DESC
		LIMIT 1

		RETURN author.Author_ID AS author_id,
		       author.Author_Name AS author_name,
		       degree,
		       distance,
		       author.skills AS skills
	`, maxDistance, maxDistance)
}

// queryCohesionCandidates collects the ten nearest keyword-matching authors
// over any edge type; the caller re-scores them by cohesion.
func queryCohesionCandidates(maxDistance int) string {
	return fmt.Sprintf(`
		MATCH (team_member:Author)
		WHERE team_member.Author_ID IN $team_ids
		WITH COLLECT(team_member) AS team
		UNWIND team AS node
		MATCH path = (node)-[*1..%d]-(a:Author)
		WHERE (a.skills IS NOT NULL AND any(skill IN split(a.skills, ', ') WHERE toLower(skill) CONTAINS toLower($keyword)))
		AND NOT a.Author_ID IN $team_ids
		AND NOT a.Author_ID IN $excluded_ids
		WITH a, MIN(length(path)) AS distance
		RETURN a.Author_ID AS author_id, a.Author_Name AS author_name, a.skills AS skills, distance
		ORDER BY distance ASC
		LIMIT 10
	`, maxDistance)
}

// queryPotentialCohesion sums the pairwise cohesion contribution of one
// candidate against every current team member.
const queryPotentialCohesion = `
	MATCH (candidate:Author {Author_ID: $candidate_id})

	UNWIND $team_ids AS team_member_id
	MATCH (team_member:Author {Author_ID: team_member_id})

	OPTIONAL MATCH (candidate)-[:WRITTEN]->(p:Paper)<-[:WRITTEN]-(team_member)
	WITH candidate, team_member, COLLECT(DISTINCT p) AS shared_papers

	OPTIONAL MATCH (candidate)-[:WORKS_IN]->(o:Organization|Department)<-[:WORKS_IN]-(team_member)
	WITH team_member, SIZE(shared_papers) AS paper_count, COLLECT(DISTINCT o) AS shared_orgs

	WITH team_member.Author_ID AS member_id,
	     paper_count,
	     SIZE(shared_orgs) AS org_count,
	     paper_count * 2 + SIZE(shared_orgs) AS pair_score

	RETURN SUM(pair_score) AS total_cohesion
`

// queryFindTimeAware finds an author sharing a recent-enough paper with the
// team, ranked by recency, then distance, then citation mass. The null
// replacement for unknown recency is computed engine-side.
const queryFindTimeAware = `
	MATCH (author:Author)
	WHERE author.skills IS NOT NULL
	      AND any(skill IN split(author.skills, ', ') WHERE toLower(skill) CONTAINS toLower($keyword))
	      AND NOT author.Author_ID IN $excluded_ids

	WITH author
	MATCH (team:Author)
	WHERE team.Author_ID IN $team_ids AND author <> team

	MATCH (author)-[:WRITTEN]->(paper:Paper)<-[:WRITTEN]-(team)

	WHERE coalesce(paper.Years_Passed, $null_replacement) <= $time_threshold

	WITH DISTINCT author,
	     2 AS direct_distance,
	     min(coalesce(paper.Years_Passed, $null_replacement)) AS min_years_passed

	OPTIONAL MATCH (author)-[:WRITTEN]->(p:Paper)
	WHERE any(kw IN split(p.Combined_Keywords, ', ') WHERE toLower(kw) CONTAINS toLower($keyword))
	WITH author, direct_distance, min_years_passed,
	     SUM(coalesce(p.n_Citation, 0)) AS citation_count

	ORDER BY min_years_passed ASC, direct_distance ASC, citation_count DESC
	LIMIT 1

	RETURN author.Author_ID AS author_id,
	       author.Author_Name AS author_name,
	       author.skills AS skills,
	       citation_count,
	       direct_distance AS distance,
	       min_years_passed AS recency
`

// queryFindCitationOptimized is the TAT shape with a configurable ORDER BY.
func queryFindCitationOptimized(order SortOrder) string {
	return fmt.Sprintf(`
		MATCH (author:Author)
		WHERE author.skills IS NOT NULL
		      AND any(skill IN split(author.skills, ', ') WHERE toLower(skill) CONTAINS toLower($keyword))
		      AND NOT author.Author_ID IN $excluded_ids

		WITH author

		MATCH (team:Author)
		WHERE team.Author_ID IN $team_ids

		MATCH (author)-[w1:WRITTEN]->(paper:Paper)<-[w2:WRITTEN]-(team)
		WHERE coalesce(paper.Years_Passed, $null_replacement) <= $time_threshold

		WITH author, team, paper,
		     2 AS path_length,
		     coalesce(paper.Years_Passed, $null_replacement) AS years_passed

		WITH author, min(path_length) AS min_distance, min(years_passed) AS min_years_passed

		OPTIONAL MATCH (author)-[:WRITTEN]->(p:Paper)
		WHERE any(kw IN split(p.Combined_Keywords, ', ') WHERE toLower(kw) CONTAINS toLower($keyword))
		WITH author, min_distance, min_years_passed,
		     SUM(coalesce(p.n_Citation, 0)) AS citation_count

		%s
		LIMIT 1

		RETURN author.Author_ID AS author_id,
		       author.Author_Name AS author_name,
		       author.skills AS skills,
		       citation_count,
		       min_distance AS distance,
		       min_years_passed AS recency
	`, order.orderClause())
}

// queryMemberDetails is the batch "enrich members" lookup: paper counts,
// citation totals, and every affiliation reachable directly or through a
// parent organization.
const queryMemberDetails = `
	MATCH (a:Author)
	WHERE a.Author_ID IN $author_ids

	OPTIONAL MATCH (a)-[:WRITTEN]->(p:Paper)
	WITH a, COUNT(DISTINCT p) as paper_count, SUM(COALESCE(p.n_Citation, 0)) AS total_citations

	OPTIONAL MATCH (a)-[:WORKS_IN]->(org:Organization)
	OPTIONAL MATCH (a)-[:WORKS_IN]->(dept:Department)
	OPTIONAL MATCH (a)-[:WORKS_IN]->(dept2:Department)<-[:INCLUDES]-(parent_org:Organization)

	WITH a, paper_count, total_citations,
	     COLLECT(DISTINCT org.Org_Name) +
	     COLLECT(DISTINCT dept.Dept_Name) +
	     COLLECT(DISTINCT parent_org.Org_Name) AS all_orgs

	RETURN a.Author_ID AS author_id,
	       a.Author_Name AS author_name,
	       COALESCE(a.skills, '') AS skills,
	       COALESCE(paper_count, 0) as paper_count,
	       [org_name IN all_orgs WHERE org_name IS NOT NULL AND org_name <> ''] AS organizations,
	       COALESCE(total_citations, 0) AS total_citations
	ORDER BY a.Author_Name
`

// queryKeywordVocabulary lists the distinct skill labels in the store, for
// the external autocomplete feature.
const queryKeywordVocabulary = `
	MATCH (a:Author)
	WHERE a.skills IS NOT NULL
	WITH split(a.skills, ', ') AS skill_list
	UNWIND skill_list AS skill
	WITH trim(skill) AS clean_skill
	WHERE clean_skill <> ''
	RETURN DISTINCT clean_skill AS keyword
	ORDER BY keyword
	LIMIT $limit
`

// querySearchAuthors looks up authors by name or skill substring.
const querySearchAuthors = `
	MATCH (a:Author)
	WHERE toLower(a.Author_Name) CONTAINS toLower($query)
	   OR (a.skills IS NOT NULL AND toLower(a.skills) CONTAINS toLower($query))
	RETURN a.Author_ID AS author_id,
	       a.Author_Name AS author_name,
	       COALESCE(a.skills, '') AS skills
	ORDER BY a.Author_Name
	LIMIT $limit
`

// queryConnectivityProbe is the startup self-test.
const queryConnectivityProbe = `RETURN 1 AS test`
