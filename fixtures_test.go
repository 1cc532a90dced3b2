package genbank

// Fixtures are laid out on the GenBank columns: feature keys in column 6,
// locations and qualifiers in column 22, sequence from column 11.

const yeastRecord = `LOCUS       SCU49845                 120 bp    DNA     linear   PLN 21-JUN-1999
DEFINITION  Saccharomyces cerevisiae TCP1-beta gene, partial cds; and Axl2p
            (AXL2) gene, complete cds.
ACCESSION   U49845
VERSION     U49845.1  GI:1293613
KEYWORDS    .
SOURCE      Saccharomyces cerevisiae (baker's yeast)
  ORGANISM  Saccharomyces cerevisiae
            Eukaryota; Fungi; Ascomycota; Saccharomycotina; Saccharomycetes;
            Saccharomycetales; Saccharomycetaceae; Saccharomyces.
REFERENCE   1  (bases 1 to 120)
  AUTHORS   Torpey,L.E., Gibbs,P.E., Nelson,J. and Lawrence,C.W.
  TITLE     Cloning and sequence of REV7, a gene whose function is required for
            DNA damage-induced mutagenesis in Saccharomyces cerevisiae
  JOURNAL   Yeast 10 (11), 1503-1509 (1994)
   PUBMED   7871890
REFERENCE   2  (bases 1 to 120)
  AUTHORS   Roemer,T., Madden,K., Chang,J. and Snyder,M.
  CONSRTM   Yeast Genome Consortium
  JOURNAL   Submitted (22-FEB-1996) Biology, Yale University, New Haven, CT
            06520, USA
COMMENT     Test record derived from U49845.
            Second comment line.
FEATURES             Location/Qualifiers
     source          1..120
                     /organism="Saccharomyces cerevisiae"
                     /mol_type="genomic DNA"
                     /db_xref="taxon:4932"
                     /db_xref="BioSample:SAMN0001"
     mRNA            <1..>60
                     /product="TCP1-beta"
     CDS             join(1..10,
                     21..30)
                     /codon_start=1
                     /product="spliced
                     protein"
                     /translation="MSKL
                     LQRA"
     gene            complement(41..60)
                     /gene="AXL2"
                     /pseudo
ORIGIN      
        1 gatcctccat atacaacggt atctccacct caggtttaga tctcaacaac ggaaccattg
       61 ccgacatgag acagttaggt atcgtcgaga gttacaagct aaaacgagca gtagtcagct
//
`

const plasmidRecord = `LOCUS       PLASMID1                  35 bp    ds-DNA  circular BCT 02-JAN-2020
DEFINITION  Synthetic plasmid fragment.
ACCESSION   AB000001 REGION: 5..39
VERSION     AB000001.2
KEYWORDS    plasmid; test.
SOURCE      synthetic construct
  ORGANISM  synthetic construct
            other sequences; artificial sequences.
FEATURES             Location/Qualifiers
     misc_feature    join(20..30,1..10)
                     /note="out of order"
     repeat_region   J00194.1:100..202,3..5
     CDS             complement(join(1..10,20..30))
                     /locus_tag="PL_0001"
ORIGIN      
        1 ttgaccgatg catgcaaaat tttccccggg gtacg
//
`

const brokenRecord = `LOCUS       BROKEN this is not a header
DEFINITION  lost.
//
`
